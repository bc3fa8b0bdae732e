package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo       repository.UserRepositoryInterface
	statusRepo repository.TaskStatusRepositoryInterface
	validator  *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, statusRepo repository.TaskStatusRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:       repo,
		statusRepo: statusRepo,
		validator:  validator,
	}
}

// Caller identifies the authenticated principal an operation runs as.
// Authentication itself happens outside the core; the request layer hands
// in the resolved email and privilege.
type Caller struct {
	Email     string
	Privilege int
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Email       string `json:"email" validate:"omitempty,email,max=80"`
	DisplayName string `json:"display_name" validate:"max=80"`
	Privilege   int    `json:"privilege"`
}

// UpdateUserRequest represents the data needed to update a user.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	DisplayName     *string `json:"display_name" validate:"omitempty,max=80"`
	Privilege       *int    `json:"privilege"`
	QuizCompleted   *bool   `json:"quiz_completed"`
	GoalsSet        *bool   `json:"goals_set"`
	LearningProfile *string `json:"learning_profile" validate:"omitempty,max=255"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID              uint   `json:"id"`
	Email           string `json:"email"`
	DisplayName     string `json:"display_name"`
	Privilege       int    `json:"privilege"`
	QuizCompleted   bool   `json:"quiz_completed"`
	GoalsSet        bool   `json:"goals_set"`
	LearningProfile string `json:"learning_profile"`
	TeamID          *uint  `json:"team_id,omitempty"`
}

// UserListResponse represents a page of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// TaskStatusResponse represents one per-task progress record for a user
type TaskStatusResponse struct {
	TaskID uint                `json:"task_id"`
	Status models.TaskProgress `json:"status"`
	Points int                 `json:"points"`
}

// Create creates a new user on behalf of a staff-or-higher caller. The
// privilege the new user is created with is capped by the caller's own tier.
func (s *UserService) Create(caller Caller, req *CreateUserRequest) (*UserResponse, error) {
	if err := Authorize(caller.Privilege, models.PrivilegeStaff); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.ErrEmailNotSpecified
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, apperrors.ErrDisplayNameNotSpecified
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}
	if err := AuthorizeCreatePrivilege(caller.Privilege, req.Privilege); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := &models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Privilege:   req.Privilege,
	}

	if err := s.repo.Create(user); err != nil {
		// A concurrent registration can slip past the lookup above; the
		// unique index is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// GetByID retrieves a user by ID. Unprivileged accounts may not look up
// other users' records.
func (s *UserService) GetByID(caller Caller, id uint) (*UserResponse, error) {
	if err := Authorize(caller.Privilege, models.PrivilegeMember); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserResponse(user), nil
}

// List retrieves users with pagination, ordered by id
func (s *UserService) List(caller Caller, page, pageSize int) (*UserListResponse, error) {
	if err := Authorize(caller.Privilege, models.PrivilegeMember); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies field updates to a user under the self-or-superior rule:
// a user may always edit themselves; editing anyone else requires strictly
// greater privilege than the target's.
func (s *UserService) Update(caller Caller, id uint, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := AuthorizeSelfOrSuperior(caller.Email, caller.Privilege, user); err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, apperrors.ErrDisplayNameNotSpecified
		}
		user.DisplayName = *req.DisplayName
	}
	if req.Privilege != nil {
		if *req.Privilege < models.MinPrivilege || *req.Privilege > models.MaxPrivilege {
			return nil, apperrors.ErrInvalidPrivilegeLevel
		}
		user.Privilege = *req.Privilege
	}
	if req.QuizCompleted != nil {
		user.QuizCompleted = *req.QuizCompleted
	}
	if req.GoalsSet != nil {
		user.GoalsSet = *req.GoalsSet
	}
	if req.LearningProfile != nil {
		user.LearningProfile = *req.LearningProfile
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return toUserResponse(user), nil
}

// GetTaskStatuses retrieves every task progress record for a user
func (s *UserService) GetTaskStatuses(id uint) ([]TaskStatusResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	statuses, err := s.statusRepo.GetByUserID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task statuses: %w", err)
	}

	responses := make([]TaskStatusResponse, len(statuses))
	for i, status := range statuses {
		responses[i] = TaskStatusResponse{
			TaskID: status.TaskID,
			Status: status.Status,
			Points: status.Points,
		}
	}
	return responses, nil
}

// toUserResponse converts a user model to response
func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		DisplayName:     user.DisplayName,
		Privilege:       user.Privilege,
		QuizCompleted:   user.QuizCompleted,
		GoalsSet:        user.GoalsSet,
		LearningProfile: user.LearningProfile,
		TeamID:          user.TeamID,
	}
}
