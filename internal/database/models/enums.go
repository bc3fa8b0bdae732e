package models

// TaskType represents the kind of submission a task requires
type TaskType int

const (
	TaskReadOnly       TaskType = 0
	TaskFileSubmission TaskType = 1

	// MaxTaskType is the highest valid TaskType value; out-of-range input
	// is clamped to this bound rather than rejected.
	MaxTaskType TaskType = TaskFileSubmission
)

// TaskCategory represents the grouping of a task
type TaskCategory int

const (
	CategoryGeneral TaskCategory = 0
	CategoryForFun  TaskCategory = 1

	// MaxTaskCategory is the highest valid TaskCategory value
	MaxTaskCategory TaskCategory = CategoryForFun
)

// TaskProgress represents the per-user lifecycle state of a task.
// Progress only ever moves forward; assignment never regresses it.
type TaskProgress int

const (
	StatusUnavailable TaskProgress = 0
	StatusAvailable   TaskProgress = 1
	StatusSubmitted   TaskProgress = 2
	StatusCompleted   TaskProgress = 3
)

// Privilege tiers. Higher strictly dominates lower.
const (
	PrivilegeNone      = 0 // registered but unprivileged
	PrivilegeMember    = 1
	PrivilegeOrganizer = 2 // may create teams
	PrivilegeStaff     = 3 // may manage tasks, users and assignments
	PrivilegeAdmin     = 4

	MinPrivilege = PrivilegeNone
	MaxPrivilege = PrivilegeAdmin
)

// MaxTaskPoints bounds the point value of a task
const (
	MinTaskPoints = 1
	MaxTaskPoints = 10000
)
