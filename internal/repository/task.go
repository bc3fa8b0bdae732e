package repository

import (
	"github.com/celestine-lau/enactus-app/internal/database/models"

	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByName retrieves a task by its unique name
func (r *TaskRepository) GetByName(name string) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByIDs retrieves the tasks whose ids exist; unknown ids are simply absent
// from the result
func (r *TaskRepository) GetByIDs(ids []uint) ([]models.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tasks []models.Task
	err := r.db.Where("id IN ?", ids).Find(&tasks).Error
	return tasks, err
}

// GetAllIDs retrieves the ids of every task
func (r *TaskRepository) GetAllIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Task{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

// GetAll retrieves all tasks with pagination
func (r *TaskRepository) GetAll(limit, offset int) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	if err := r.db.Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}
