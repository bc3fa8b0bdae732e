package errors

import "errors"

// Stable numeric codes carried in the response envelope alongside the
// human-readable message. 0 is reserved for success; clients key off these
// values, so the numbering must never be reshuffled.
const (
	CodeSuccess                  = 0
	CodeNoSuchUser               = 1
	CodeNoSuchTask               = 2
	CodeNoSuchTeam               = 3
	CodeDuplicateName            = 4
	CodeInvalidPrivilegeLevel    = 5
	CodeInsufficientPrivilege    = 6
	CodeInvalidTaskDetails       = 7
	CodeInvalidImageURL          = 8
	CodeInvalidTaskURL           = 9
	CodeInvalidParameters        = 10
	CodeUsersOrTasksNotSpecified = 11
	CodeDisplayNameNotSpecified  = 12
	CodeEmailNotSpecified        = 13
	CodeTeamNameNotSpecified     = 14
	CodeUsersAlreadyInTeam       = 15
	CodeLeaderNotInTeam          = 16
	CodeMalformedRequest         = 17
	CodeInternal                 = 100
)

// Code maps a service-layer error to its envelope code. Unknown errors
// (infrastructure failures) map to CodeInternal; their raw text never
// reaches the caller.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrUserNotFound):
		return CodeNoSuchUser
	case errors.Is(err, ErrTaskNotFound):
		return CodeNoSuchTask
	case errors.Is(err, ErrTeamNotFound):
		return CodeNoSuchTeam
	case IsDuplicateName(err):
		return CodeDuplicateName
	case errors.Is(err, ErrInvalidPrivilegeLevel):
		return CodeInvalidPrivilegeLevel
	case errors.Is(err, ErrInsufficientPrivilege):
		return CodeInsufficientPrivilege
	case errors.Is(err, ErrInvalidTaskDetails):
		return CodeInvalidTaskDetails
	case errors.Is(err, ErrInvalidImageURL):
		return CodeInvalidImageURL
	case errors.Is(err, ErrInvalidTaskURL):
		return CodeInvalidTaskURL
	case errors.Is(err, ErrInvalidParameters):
		return CodeInvalidParameters
	case errors.Is(err, ErrUsersOrTasksNotSpecified):
		return CodeUsersOrTasksNotSpecified
	case errors.Is(err, ErrDisplayNameNotSpecified):
		return CodeDisplayNameNotSpecified
	case errors.Is(err, ErrEmailNotSpecified):
		return CodeEmailNotSpecified
	case errors.Is(err, ErrTeamNameNotSpecified):
		return CodeTeamNameNotSpecified
	case errors.Is(err, ErrUsersAlreadyInTeam):
		return CodeUsersAlreadyInTeam
	case errors.Is(err, ErrLeaderNotInTeam):
		return CodeLeaderNotInTeam
	case errors.Is(err, ErrMalformedRequest), IsValidation(err):
		return CodeMalformedRequest
	case IsAuthorization(err):
		return CodeInsufficientPrivilege
	default:
		return CodeInternal
	}
}
