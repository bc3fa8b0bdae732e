package models

// Team represents a named group of users with an optional designated leader.
// LeaderID must reference a current member; membership itself lives on
// User.TeamID and the member list is always a derived query.
type Team struct {
	BaseModel
	Name     string `json:"name" gorm:"uniqueIndex;not null;size:80" validate:"required,max=80"`
	Charter  string `json:"charter" gorm:"type:text"`
	LeaderID *uint  `json:"leader_id,omitempty"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
