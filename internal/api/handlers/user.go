package handlers

import (
	"strconv"

	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// parseIDParam parses a numeric path parameter. A non-numeric scalar id is a
// hard parameter error, unlike list parameters where bad entries are dropped.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondError(c, apperrors.ErrInvalidParameters)
		return 0, false
	}
	return uint(id), true
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Description Register a new user; the requested privilege must be below the caller's own unless the caller is an admin
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} Envelope{data=service.UserResponse} "Successfully created user"
// @Failure 400 {object} Envelope "Missing email or display name"
// @Failure 403 {object} Envelope "Caller may not create this privilege level"
// @Failure 409 {object} Envelope "Email already registered"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMalformedRequest)
		return
	}

	user, err := h.userService.Create(callerFrom(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, user)
}

// GetUser handles GET /users/:id
// @Summary Get user by id
// @Description Look up a user's record; requires privilege 1 or higher
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} Envelope{data=service.UserResponse} "Successfully retrieved user"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Failure 404 {object} Envelope "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(callerFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// ListUsers handles GET /users
// @Summary List users
// @Description List users with pagination; requires privilege 1 or higher
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} Envelope{data=service.UserListResponse} "Page of users"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	users, err := h.userService.List(callerFrom(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, users)
}

// UpdateUser handles PUT /users/:id
// @Summary Update a user
// @Description Update a user's profile; callers may update themselves, staff may update anyone of lower privilege
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param user body service.UpdateUserRequest true "Fields to update"
// @Success 200 {object} Envelope{data=service.UserResponse} "Successfully updated user"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Failure 404 {object} Envelope "User not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMalformedRequest)
		return
	}

	user, err := h.userService.Update(callerFrom(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// GetUserTasks handles GET /users/:id/tasks
// @Summary Get a user's task statuses
// @Description List every task assigned to the user with its progress state and earned points
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} Envelope{data=[]service.TaskStatusResponse} "Successfully retrieved task statuses"
// @Failure 404 {object} Envelope "User not found"
// @Security BearerAuth
// @Router /users/{id}/tasks [get]
func (h *UserHandler) GetUserTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	statuses, err := h.userService.GetTaskStatuses(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, statuses)
}
