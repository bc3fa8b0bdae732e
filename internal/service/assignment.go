package service

import (
	"encoding/json"
	"fmt"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/repository"

	"gorm.io/gorm"
)

// AssignmentService makes tasks available to users. Assignment is idempotent
// and safe to call repeatedly with overlapping sets: existing progress is
// never regressed or reset.
type AssignmentService struct {
	db *gorm.DB
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// AssignTasksRequest carries id-or-list parameters for users and tasks
type AssignTasksRequest struct {
	UserIDs json.RawMessage `json:"userids" swaggertype:"array,integer"`
	TaskIDs json.RawMessage `json:"taskids" swaggertype:"array,integer"`
}

// AssignAllTasksRequest carries the id-or-list user parameter; the task set
// is implicitly every current task
type AssignAllTasksRequest struct {
	UserIDs json.RawMessage `json:"userids" swaggertype:"array,integer"`
}

// AssignTasks assigns each listed task to each listed user. Ids that do not
// resolve to an existing user or task are silently dropped. The whole cross
// product is applied in one transaction; a mid-batch failure rolls back
// every pair.
func (s *AssignmentService) AssignTasks(caller Caller, req *AssignTasksRequest) error {
	if err := Authorize(caller.Privilege, models.PrivilegeStaff); err != nil {
		return err
	}

	userIDs, present, err := ParseIDSet(req.UserIDs)
	if err != nil {
		return err
	}
	if !present {
		return apperrors.ErrUsersOrTasksNotSpecified
	}
	taskIDs, present, err := ParseIDSet(req.TaskIDs)
	if err != nil {
		return err
	}
	if !present {
		return apperrors.ErrUsersOrTasksNotSpecified
	}

	return s.assign(userIDs, taskIDs)
}

// AssignAllTasks assigns the full current task set to each listed user
func (s *AssignmentService) AssignAllTasks(caller Caller, req *AssignAllTasksRequest) error {
	if err := Authorize(caller.Privilege, models.PrivilegeStaff); err != nil {
		return err
	}

	userIDs, present, err := ParseIDSet(req.UserIDs)
	if err != nil {
		return err
	}
	if !present {
		return apperrors.ErrUsersOrTasksNotSpecified
	}

	taskIDs, err := repository.NewTaskRepository(s.db).GetAllIDs()
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	return s.assign(userIDs, taskIDs)
}

func (s *AssignmentService) assign(userIDs, taskIDs []uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		taskRepo := repository.NewTaskRepository(tx)
		statusRepo := repository.NewTaskStatusRepository(tx)

		// Resolve only the ids that exist; a typo'd id is never an error.
		users, err := userRepo.GetByIDs(userIDs)
		if err != nil {
			return fmt.Errorf("failed to resolve users: %w", err)
		}
		tasks, err := taskRepo.GetByIDs(taskIDs)
		if err != nil {
			return fmt.Errorf("failed to resolve tasks: %w", err)
		}
		if len(users) == 0 || len(tasks) == 0 {
			return nil
		}

		resolvedUsers := make([]uint, len(users))
		for i, u := range users {
			resolvedUsers[i] = u.ID
		}
		resolvedTasks := make([]uint, len(tasks))
		for i, t := range tasks {
			resolvedTasks[i] = t.ID
		}

		existing, err := statusRepo.GetByUserAndTaskIDs(resolvedUsers, resolvedTasks)
		if err != nil {
			return fmt.Errorf("failed to load statuses: %w", err)
		}

		byPair := make(map[[2]uint]*models.TaskStatus, len(existing))
		for i := range existing {
			byPair[[2]uint{existing[i].UserID, existing[i].TaskID}] = &existing[i]
		}

		var created []models.TaskStatus
		for _, userID := range resolvedUsers {
			for _, taskID := range resolvedTasks {
				status, exists := byPair[[2]uint{userID, taskID}]
				if !exists {
					created = append(created, models.TaskStatus{
						UserID: userID,
						TaskID: taskID,
						Status: models.StatusAvailable,
						Points: 0,
					})
					continue
				}
				// Only the unavailable state advances; anything further
				// along is left untouched.
				if status.Status == models.StatusUnavailable {
					if err := statusRepo.UpdateStatus(status.ID, models.StatusAvailable); err != nil {
						return fmt.Errorf("failed to advance status: %w", err)
					}
				}
			}
		}

		if err := statusRepo.CreateBatch(created); err != nil {
			return fmt.Errorf("failed to create statuses: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
