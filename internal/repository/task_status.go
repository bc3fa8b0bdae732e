package repository

import (
	"github.com/celestine-lau/enactus-app/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskStatusRepository handles database operations for per-user task progress
type TaskStatusRepository struct {
	db *gorm.DB
}

// NewTaskStatusRepository creates a new task status repository
func NewTaskStatusRepository(db *gorm.DB) *TaskStatusRepository {
	return &TaskStatusRepository{db: db}
}

// CreateBatch inserts a batch of status records. Pairs that already exist
// are skipped, so two overlapping assignment batches racing on the
// (user_id, task_id) unique index both succeed instead of one failing.
func (r *TaskStatusRepository) CreateBatch(statuses []models.TaskStatus) error {
	if len(statuses) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "task_id"}},
		DoNothing: true,
	}).Create(&statuses).Error
}

// GetByUserAndTaskIDs retrieves every existing status record for the cross
// product of the given user and task ids
func (r *TaskStatusRepository) GetByUserAndTaskIDs(userIDs, taskIDs []uint) ([]models.TaskStatus, error) {
	if len(userIDs) == 0 || len(taskIDs) == 0 {
		return nil, nil
	}
	var statuses []models.TaskStatus
	err := r.db.Where("user_id IN ? AND task_id IN ?", userIDs, taskIDs).
		Find(&statuses).Error
	return statuses, err
}

// GetByUserID retrieves all status records for one user
func (r *TaskStatusRepository) GetByUserID(userID uint) ([]models.TaskStatus, error) {
	var statuses []models.TaskStatus
	err := r.db.Where("user_id = ?", userID).Order("task_id").Find(&statuses).Error
	return statuses, err
}

// UpdateStatus sets the progress value of a single status record
func (r *TaskStatusRepository) UpdateStatus(id uint, status models.TaskProgress) error {
	return r.db.Model(&models.TaskStatus{}).Where("id = ?", id).
		Update("status", status).Error
}
