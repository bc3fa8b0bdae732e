package service

import (
	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
)

// The privilege policy is a set of pure predicates over explicit caller and
// target parameters so it stays unit-testable without a request context.

// Authorize permits an action when the caller's privilege meets the minimum
// required tier. Denial is a typed error, not a redirect: callers receive a
// structured "insufficient privilege" signal.
func Authorize(callerPrivilege, minimumRequired int) error {
	if callerPrivilege < minimumRequired {
		return apperrors.ErrInsufficientPrivilege
	}
	return nil
}

// AuthorizeSelfOrSuperior permits an update to the target user when the
// caller is the target, or when the caller strictly outranks the target.
// Equal privilege is insufficient.
func AuthorizeSelfOrSuperior(callerEmail string, callerPrivilege int, target *models.User) error {
	if callerEmail == target.Email {
		return nil
	}
	if callerPrivilege > target.Privilege {
		return nil
	}
	return apperrors.ErrInsufficientPrivilege
}

// AuthorizeCreatePrivilege governs the privilege a new user may be created
// with. Requested levels outside 1..MaxPrivilege are invalid; staff-tier
// callers may only create strictly subordinate users (privilege 1 or 2),
// while admins may create any level up to their own.
func AuthorizeCreatePrivilege(callerPrivilege, requestedPrivilege int) error {
	if requestedPrivilege < models.PrivilegeMember || requestedPrivilege > models.MaxPrivilege {
		return apperrors.ErrInvalidPrivilegeLevel
	}
	if callerPrivilege >= models.PrivilegeAdmin {
		return nil
	}
	if requestedPrivilege < callerPrivilege {
		return nil
	}
	return apperrors.ErrInsufficientPrivilege
}
