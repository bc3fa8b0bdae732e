package models

// TaskStatus is the per-user progress record for one task. Exactly one row
// exists per (user, task) pair, enforced by a composite unique index so that
// concurrent assignment batches cannot create duplicates.
type TaskStatus struct {
	BaseModel
	UserID uint         `json:"user_id" gorm:"not null;uniqueIndex:idx_task_statuses_user_task"`
	TaskID uint         `json:"task_id" gorm:"not null;uniqueIndex:idx_task_statuses_user_task"`
	Status TaskProgress `json:"status" gorm:"not null;default:0"`
	Points int          `json:"points" gorm:"not null;default:0"`

	User User `json:"-" gorm:"foreignKey:UserID"`
	Task Task `json:"-" gorm:"foreignKey:TaskID"`
}

// TableName returns the table name for TaskStatus
func (TaskStatus) TableName() string {
	return "task_statuses"
}
