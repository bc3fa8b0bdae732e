package handlers

import (
	"strconv"

	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team with optional initial members and leader; every member must currently be teamless
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} Envelope{data=service.TeamResponse} "Successfully created team"
// @Failure 400 {object} Envelope "Missing name, unknown member or leader outside the team"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Failure 409 {object} Envelope "Team name already exists"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMalformedRequest)
		return
	}

	team, err := h.teamService.Create(callerFrom(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by id
// @Description Get a team materialized with its current member list
// @Tags teams
// @Produce json
// @Param id path int true "Team id"
// @Success 200 {object} Envelope{data=service.TeamResponse} "Successfully retrieved team"
// @Failure 404 {object} Envelope "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, team)
}

// SearchTeams handles GET /teams
// @Summary Search teams by name
// @Description List teams whose name contains the query substring
// @Tags teams
// @Produce json
// @Param query query string false "Name substring"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} Envelope{data=service.TeamListResponse} "Matching teams"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) SearchTeams(c *gin.Context) {
	query := c.Query("query")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	teams, err := h.teamService.Search(query, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, teams)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Organizers and above may change anything; the team's own leader may rename or re-charter it but not touch membership
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team id"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} Envelope{data=service.TeamResponse} "Successfully updated team"
// @Failure 400 {object} Envelope "Unknown member, member already teamed or leader outside the team"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Failure 404 {object} Envelope "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMalformedRequest)
		return
	}

	team, err := h.teamService.Update(callerFrom(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team and release all of its members
// @Tags teams
// @Produce json
// @Param id path int true "Team id"
// @Success 200 {object} Envelope "Team deleted"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Failure 404 {object} Envelope "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(callerFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// GetTeamLeader handles GET /teams/:id/leader
// @Summary Get a team's leader
// @Description Resolve the team's leader against its current member list; a team without a leader returns null
// @Tags teams
// @Produce json
// @Param id path int true "Team id"
// @Success 200 {object} Envelope{data=service.UserResponse} "Leader, or null when the team has none"
// @Failure 404 {object} Envelope "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/leader [get]
func (h *TeamHandler) GetTeamLeader(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	leader, err := h.teamService.GetLeader(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, leader)
}
