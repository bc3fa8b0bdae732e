package service_test

import (
	"testing"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	testCases := []struct {
		name      string
		caller    int
		minimum   int
		expectErr error
	}{
		{"Equal privilege passes", models.PrivilegeStaff, models.PrivilegeStaff, nil},
		{"Higher privilege passes", models.PrivilegeAdmin, models.PrivilegeMember, nil},
		{"Lower privilege denied", models.PrivilegeMember, models.PrivilegeOrganizer, apperrors.ErrInsufficientPrivilege},
		{"Zero privilege denied for member tier", models.PrivilegeNone, models.PrivilegeMember, apperrors.ErrInsufficientPrivilege},
		{"Zero minimum always passes", models.PrivilegeNone, models.PrivilegeNone, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.Authorize(tc.caller, tc.minimum)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeSelfOrSuperior(t *testing.T) {
	target := &models.User{
		Email:     "target@test.com",
		Privilege: models.PrivilegeOrganizer,
	}

	t.Run("Self always allowed", func(t *testing.T) {
		err := service.AuthorizeSelfOrSuperior("target@test.com", models.PrivilegeMember, target)
		assert.NoError(t, err)
	})

	t.Run("Strictly higher privilege allowed", func(t *testing.T) {
		err := service.AuthorizeSelfOrSuperior("staff@test.com", models.PrivilegeStaff, target)
		assert.NoError(t, err)
	})

	t.Run("Equal privilege denied", func(t *testing.T) {
		err := service.AuthorizeSelfOrSuperior("peer@test.com", models.PrivilegeOrganizer, target)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPrivilege)
	})

	t.Run("Lower privilege denied", func(t *testing.T) {
		err := service.AuthorizeSelfOrSuperior("member@test.com", models.PrivilegeMember, target)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPrivilege)
	})
}

func TestAuthorizeCreatePrivilege(t *testing.T) {
	testCases := []struct {
		name      string
		caller    int
		requested int
		expectErr error
	}{
		{"Staff creates member", models.PrivilegeStaff, models.PrivilegeMember, nil},
		{"Staff creates organizer", models.PrivilegeStaff, models.PrivilegeOrganizer, nil},
		{"Staff cannot create staff", models.PrivilegeStaff, models.PrivilegeStaff, apperrors.ErrInsufficientPrivilege},
		{"Staff cannot create admin", models.PrivilegeStaff, models.PrivilegeAdmin, apperrors.ErrInsufficientPrivilege},
		{"Admin creates staff", models.PrivilegeAdmin, models.PrivilegeStaff, nil},
		{"Admin creates admin", models.PrivilegeAdmin, models.PrivilegeAdmin, nil},
		{"Requested zero invalid", models.PrivilegeAdmin, 0, apperrors.ErrInvalidPrivilegeLevel},
		{"Requested negative invalid", models.PrivilegeAdmin, -1, apperrors.ErrInvalidPrivilegeLevel},
		{"Requested above max invalid", models.PrivilegeAdmin, models.MaxPrivilege + 1, apperrors.ErrInvalidPrivilegeLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.AuthorizeCreatePrivilege(tc.caller, tc.requested)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
