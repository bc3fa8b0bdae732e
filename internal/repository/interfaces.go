package repository

import (
	"github.com/celestine-lau/enactus-app/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uint) ([]models.User, error)
	GetByIDsForUpdate(ids []uint) ([]models.User, error)
	GetByTeamID(teamID uint) ([]models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	SetTeam(userIDs []uint, teamID *uint) error
	ClearTeamByTeamID(teamID uint) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uint) (*models.Task, error)
	GetByName(name string) (*models.Task, error)
	GetByIDs(ids []uint) ([]models.Task, error)
	GetAllIDs() ([]uint, error)
	GetAll(limit, offset int) ([]models.Task, int64, error)
	Update(task *models.Task) error
}

// TaskStatusRepositoryInterface defines the interface for task status repository operations
type TaskStatusRepositoryInterface interface {
	CreateBatch(statuses []models.TaskStatus) error
	GetByUserAndTaskIDs(userIDs, taskIDs []uint) ([]models.TaskStatus, error)
	GetByUserID(userID uint) ([]models.TaskStatus, error)
	UpdateStatus(id uint, status models.TaskProgress) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	Search(query string, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uint) error
}
