package handlers

import (
	"strconv"

	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask handles POST /tasks
// @Summary Create a new task
// @Description Create a task; type and category are clamped into range, image and url suffixes are validated
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} Envelope{data=service.TaskResponse} "Successfully created task"
// @Failure 400 {object} Envelope "Invalid task details, image URL or task URL"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Failure 409 {object} Envelope "Task name already exists"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMalformedRequest)
		return
	}

	task, err := h.taskService.Create(callerFrom(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, task)
}

// GetTask handles GET /tasks/:id
// @Summary Get task by id
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} Envelope{data=service.TaskResponse} "Successfully retrieved task"
// @Failure 404 {object} Envelope "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, task)
}

// ListTasks handles GET /tasks
// @Summary List tasks
// @Description List tasks with pagination
// @Tags tasks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} Envelope{data=service.TaskListResponse} "Page of tasks"
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tasks, err := h.taskService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tasks)
}

// UpdateTask handles PUT /tasks/:id
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task id"
// @Param task body service.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} Envelope{data=service.TaskResponse} "Successfully updated task"
// @Failure 400 {object} Envelope "Invalid task details, image URL or task URL"
// @Failure 403 {object} Envelope "Insufficient privilege"
// @Failure 404 {object} Envelope "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrMalformedRequest)
		return
	}

	task, err := h.taskService.Update(callerFrom(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, task)
}
