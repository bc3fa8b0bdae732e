package testutils

import (
	"fmt"
	"sync/atomic"

	"github.com/celestine-lau/enactus-app/internal/database/models"
)

var factorySeq uint64

// nextSeq returns a process-unique suffix so factory records never collide
// on unique columns
func nextSeq() uint64 {
	return atomic.AddUint64(&factorySeq, 1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	n := nextSeq()
	return &models.User{
		Email:       fmt.Sprintf("user%d@test.com", n),
		DisplayName: fmt.Sprintf("Test User %d", n),
		Privilege:   models.PrivilegeMember,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithPrivilege sets a custom privilege level for the user
func (f *UserFactory) WithPrivilege(privilege int) *models.User {
	user := f.Create()
	user.Privilege = privilege
	return user
}

// WithTeam sets the team id for the user
func (f *UserFactory) WithTeam(teamID uint) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() *models.Task {
	n := nextSeq()
	return &models.Task{
		Name:        fmt.Sprintf("Test Task %d", n),
		MaxPoints:   100,
		Type:        models.TaskReadOnly,
		Category:    models.CategoryGeneral,
		Description: "A test task",
	}
}

// WithName sets a custom name for the task
func (f *TaskFactory) WithName(name string) *models.Task {
	task := f.Create()
	task.Name = name
	return task
}

// WithType sets a custom type for the task
func (f *TaskFactory) WithType(taskType models.TaskType) *models.Task {
	task := f.Create()
	task.Type = taskType
	return task
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	n := nextSeq()
	return &models.Team{
		Name:    fmt.Sprintf("Test Team %d", n),
		Charter: "A test team charter",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithLeader sets the leader id for the team
func (f *TeamFactory) WithLeader(leaderID uint) *models.Team {
	team := f.Create()
	team.LeaderID = &leaderID
	return team
}
