package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// DuplicateNameError represents an error when an entity name or identity
// collides with an existing record
type DuplicateNameError struct {
	Entity string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s with this name already exists", e.Entity)
}

// Is enables errors.Is() comparison for DuplicateNameError
func (e *DuplicateNameError) Is(target error) bool {
	t, ok := target.(*DuplicateNameError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound = &NotFoundError{Entity: "user"}
	ErrTaskNotFound = &NotFoundError{Entity: "task"}
	ErrTeamNotFound = &NotFoundError{Entity: "team"}
)

// Duplicate Name Errors
var (
	ErrUserExists = &DuplicateNameError{Entity: "user"}
	ErrTaskExists = &DuplicateNameError{Entity: "task"}
	ErrTeamExists = &DuplicateNameError{Entity: "team"}
)

// Authorization Errors
var (
	ErrInsufficientPrivilege  = &AuthorizationError{Message: "insufficient privilege for this action"}
	ErrInvalidPrivilegeLevel  = &AuthorizationError{Message: "invalid privilege level"}
	ErrNotRegistered          = &AuthorizationError{Message: "not a registered user"}
	ErrInvalidOrExpiredToken  = &AuthorizationError{Message: "invalid or expired token"}
	ErrMissingAuthorization   = &AuthorizationError{Message: "authorization required"}
)

// Validation Errors
var (
	ErrInvalidTaskDetails       = errors.New("invalid task details")
	ErrInvalidImageURL          = errors.New("invalid image URL")
	ErrInvalidTaskURL           = errors.New("invalid task URL")
	ErrInvalidParameters        = errors.New("invalid parameters")
	ErrUsersOrTasksNotSpecified = errors.New("users or tasks not specified")
	ErrDisplayNameNotSpecified  = errors.New("display name not specified")
	ErrEmailNotSpecified        = errors.New("email not specified")
	ErrTeamNameNotSpecified     = errors.New("team name not specified")
	ErrUsersAlreadyInTeam       = errors.New("one or more users already belong to a team")
	ErrLeaderNotInTeam          = errors.New("leader is not a member of the team")
	ErrMalformedRequest         = errors.New("malformed request")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsDuplicateName checks if an error is a DuplicateNameError
func IsDuplicateName(err error) bool {
	var dupErr *DuplicateNameError
	return errors.As(err, &dupErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
