package models

// Task represents a unit of work assignable to users for points
type Task struct {
	BaseModel
	Name        string       `json:"name" gorm:"uniqueIndex;not null;size:80" validate:"required,max=80"`
	MaxPoints   int          `json:"max_points" gorm:"not null"`
	Type        TaskType     `json:"type" gorm:"not null;default:0"`
	Category    TaskCategory `json:"category" gorm:"not null;default:0"`
	Description string       `json:"description" gorm:"size:500"`
	Image       string       `json:"image" gorm:"size:255"`
	URL         string       `json:"url" gorm:"size:255"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
