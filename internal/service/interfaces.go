package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(caller Caller, req *CreateUserRequest) (*UserResponse, error)
	GetByID(caller Caller, id uint) (*UserResponse, error)
	List(caller Caller, page, pageSize int) (*UserListResponse, error)
	Update(caller Caller, id uint, req *UpdateUserRequest) (*UserResponse, error)
	GetTaskStatuses(id uint) ([]TaskStatusResponse, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	Create(caller Caller, req *CreateTaskRequest) (*TaskResponse, error)
	GetByID(id uint) (*TaskResponse, error)
	List(page, pageSize int) (*TaskListResponse, error)
	Update(caller Caller, id uint, req *UpdateTaskRequest) (*TaskResponse, error)
}

// AssignmentServiceInterface defines the interface for task assignment
type AssignmentServiceInterface interface {
	AssignTasks(caller Caller, req *AssignTasksRequest) error
	AssignAllTasks(caller Caller, req *AssignAllTasksRequest) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(caller Caller, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(teamID uint) (*TeamResponse, error)
	Update(caller Caller, teamID uint, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(caller Caller, teamID uint) error
	Search(query string, page, pageSize int) (*TeamListResponse, error)
	GetLeader(teamID uint) (*UserResponse, error)
}
