package handlers

import (
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for task assignment
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// AssignTasks handles POST /assignments
// @Summary Assign tasks to users
// @Description Make each listed task available to each listed user. Both fields accept a single id or a list; unknown ids are skipped. Re-assigning is a no-op for pairs that already exist.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignTasksRequest true "User and task ids"
// @Success 200 {object} Envelope "Assignment applied"
// @Failure 400 {object} Envelope "Missing or invalid userids/taskids"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Security BearerAuth
// @Router /assignments [post]
func (h *AssignmentHandler) AssignTasks(c *gin.Context) {
	var req service.AssignTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMalformedRequest)
		return
	}

	if err := h.assignmentService.AssignTasks(callerFrom(c), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

// AssignAllTasks handles POST /assignments/all
// @Summary Assign every task to users
// @Description Make every existing task available to each listed user
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignAllTasksRequest true "User ids"
// @Success 200 {object} Envelope "Assignment applied"
// @Failure 400 {object} Envelope "Missing or invalid userids"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Security BearerAuth
// @Router /assignments/all [post]
func (h *AssignmentHandler) AssignAllTasks(c *gin.Context) {
	var req service.AssignAllTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMalformedRequest)
		return
	}

	if err := h.assignmentService.AssignAllTasks(callerFrom(c), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}
