package models

// User represents a registered user of the learning platform.
// TeamID is the single source of truth for team membership; the member set
// of a team is derived by querying users with a matching TeamID.
type User struct {
	BaseModel
	Email           string `json:"email" gorm:"uniqueIndex;not null;size:80" validate:"required,email,max=80"`
	DisplayName     string `json:"display_name" gorm:"not null;size:80" validate:"required,max=80"`
	Privilege       int    `json:"privilege" gorm:"not null;default:0" validate:"min=0,max=4"`
	QuizCompleted   bool   `json:"quiz_completed"`
	GoalsSet        bool   `json:"goals_set"`
	LearningProfile string `json:"learning_profile" gorm:"size:255"`
	TeamID          *uint  `json:"team_id,omitempty" gorm:"index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// InTeam reports whether the user currently belongs to the given team
func (u *User) InTeam(teamID uint) bool {
	return u.TeamID != nil && *u.TeamID == teamID
}
