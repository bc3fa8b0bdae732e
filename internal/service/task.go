package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo      repository.TaskRepositoryInterface
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTaskRequest represents the data needed to create a task. Image and
// URL arrive as raw JSON because a non-string value in either field is
// cleared rather than rejected.
type CreateTaskRequest struct {
	Name        string          `json:"name" validate:"required,max=80"`
	MaxPoints   int             `json:"max_points"`
	Type        int             `json:"type"`
	Category    int             `json:"category"`
	Description string          `json:"description" validate:"max=500"`
	Image       json.RawMessage `json:"image" swaggertype:"string"`
	URL         json.RawMessage `json:"url" swaggertype:"string"`
}

// UpdateTaskRequest represents the data needed to update a task.
// Nil fields are left untouched.
type UpdateTaskRequest struct {
	Name        *string         `json:"name" validate:"omitempty,max=80"`
	MaxPoints   *int            `json:"max_points"`
	Type        *int            `json:"type"`
	Category    *int            `json:"category"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
	Image       json.RawMessage `json:"image" swaggertype:"string"`
	URL         json.RawMessage `json:"url" swaggertype:"string"`
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	MaxPoints   int                 `json:"max_points"`
	Type        models.TaskType     `json:"type"`
	Category    models.TaskCategory `json:"category"`
	Description string              `json:"description"`
	Image       string              `json:"image,omitempty"`
	URL         string              `json:"url,omitempty"`
}

// TaskListResponse represents a page of tasks
type TaskListResponse struct {
	Tasks    []TaskResponse `json:"tasks"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new task. Point values are validated strictly; type and
// category are clamped into their enum ranges instead of rejected.
func (s *TaskService) Create(caller Caller, req *CreateTaskRequest) (*TaskResponse, error) {
	if err := Authorize(caller.Privilege, models.PrivilegeStaff); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}
	if err := ValidateMaxPoints(req.MaxPoints); err != nil {
		return nil, err
	}

	image, _ := NormalizeAssetField(req.Image)
	if err := ValidateImageURL(image); err != nil {
		return nil, err
	}
	url, _ := NormalizeAssetField(req.URL)
	if err := ValidateTaskURL(url); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByName(req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrTaskExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing task: %w", err)
	}

	task := &models.Task{
		Name:        req.Name,
		MaxPoints:   req.MaxPoints,
		Type:        ClampTaskType(req.Type),
		Category:    ClampTaskCategory(req.Category),
		Description: req.Description,
		Image:       image,
		URL:         url,
	}

	if err := s.repo.Create(task); err != nil {
		// A concurrent create can slip past the name lookup above; the
		// unique index is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTaskExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return toTaskResponse(task), nil
}

// GetByID retrieves a task by ID
func (s *TaskService) GetByID(id uint) (*TaskResponse, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return toTaskResponse(task), nil
}

// List retrieves tasks with pagination, ordered by id
func (s *TaskService) List(page, pageSize int) (*TaskListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	tasks, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *toTaskResponse(&tasks[i])
	}

	return &TaskListResponse{
		Tasks:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a task with the same validation and clamping rules as Create
func (s *TaskService) Update(caller Caller, id uint, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := Authorize(caller.Privilege, models.PrivilegeStaff); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}

	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if req.Name != nil && *req.Name != task.Name {
		if existing, err := s.repo.GetByName(*req.Name); err == nil && existing != nil {
			return nil, apperrors.ErrTaskExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing task: %w", err)
		}
		task.Name = *req.Name
	}
	if req.MaxPoints != nil {
		if err := ValidateMaxPoints(*req.MaxPoints); err != nil {
			return nil, err
		}
		task.MaxPoints = *req.MaxPoints
	}
	if req.Type != nil {
		task.Type = ClampTaskType(*req.Type)
	}
	if req.Category != nil {
		task.Category = ClampTaskCategory(*req.Category)
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if image, present := NormalizeAssetField(req.Image); present {
		if err := ValidateImageURL(image); err != nil {
			return nil, err
		}
		task.Image = image
	}
	if url, present := NormalizeAssetField(req.URL); present {
		if err := ValidateTaskURL(url); err != nil {
			return nil, err
		}
		task.URL = url
	}

	if err := s.repo.Update(task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTaskExists
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return toTaskResponse(task), nil
}

// toTaskResponse converts a task model to response
func toTaskResponse(task *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID,
		Name:        task.Name,
		MaxPoints:   task.MaxPoints,
		Type:        task.Type,
		Category:    task.Category,
		Description: task.Description,
		Image:       task.Image,
		URL:         task.URL,
	}
}
