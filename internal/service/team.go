package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService enforces the team consistency rules: one team per user, a
// leader that is always a current member, and all-or-nothing membership
// changes.
type TeamService struct {
	db        *gorm.DB
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(db *gorm.DB, repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		db:        db,
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name     string          `json:"name" validate:"max=80"`
	Charter  string          `json:"charter"`
	UserIDs  json.RawMessage `json:"userids" swaggertype:"array,integer"`
	LeaderID *uint           `json:"leader_id,omitempty"`
}

// UpdateTeamRequest represents the request to update a team. Nil fields are
// left untouched; an omitted userids field leaves membership as it is.
type UpdateTeamRequest struct {
	Name     *string         `json:"name" validate:"omitempty,max=80"`
	Charter  *string         `json:"charter"`
	UserIDs  json.RawMessage `json:"userids" swaggertype:"array,integer"`
	LeaderID *uint           `json:"leader_id,omitempty"`
}

// TeamResponse represents the response for team operations, materialized
// with the derived member list
type TeamResponse struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Charter  string         `json:"charter"`
	LeaderID *uint          `json:"leader_id,omitempty"`
	Members  []UserResponse `json:"members"`
}

// TeamListResponse represents a list of teams matching a search
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// MembershipDiff partitions a requested member set against the current one.
// Removed members get their team pointer cleared, retained members are left
// alone, and added members are validated as joinable before any write.
type MembershipDiff struct {
	Removed  []uint
	Retained []uint
	Added    []uint
}

// DiffMembership computes the three-set membership diff in one pass over
// explicit id slices, before any persistence happens. The requested slice
// is assumed deduplicated (ParseIDSet guarantees it).
func DiffMembership(current, requested []uint) MembershipDiff {
	inRequested := make(map[uint]bool, len(requested))
	for _, id := range requested {
		inRequested[id] = true
	}
	inCurrent := make(map[uint]bool, len(current))
	for _, id := range current {
		inCurrent[id] = true
	}

	var diff MembershipDiff
	for _, id := range current {
		if inRequested[id] {
			diff.Retained = append(diff.Retained, id)
		} else {
			diff.Removed = append(diff.Removed, id)
		}
	}
	for _, id := range requested {
		if !inCurrent[id] {
			diff.Added = append(diff.Added, id)
		}
	}
	return diff
}

// Create creates a team with optional initial members and leader. Any
// invalid member fails the whole operation; no partial team is persisted.
func (s *TeamService) Create(caller Caller, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := Authorize(caller.Privilege, models.PrivilegeOrganizer); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.ErrTeamNameNotSpecified
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}

	memberIDs, _, err := ParseIDSet(req.UserIDs)
	if err != nil {
		return nil, err
	}

	var team *models.Team
	err = s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		if existing, err := teamRepo.GetByName(req.Name); err == nil && existing != nil {
			return apperrors.ErrTeamExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing team: %w", err)
		}

		team = &models.Team{
			Name:    req.Name,
			Charter: req.Charter,
		}
		if err := teamRepo.Create(team); err != nil {
			// A concurrent create can slip past the name lookup above; the
			// unique index is the authority and the transaction rolls back.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrTeamExists
			}
			return fmt.Errorf("failed to create team: %w", err)
		}

		if len(memberIDs) > 0 {
			members, err := userRepo.GetByIDsForUpdate(memberIDs)
			if err != nil {
				return fmt.Errorf("failed to resolve members: %w", err)
			}
			if len(members) != len(memberIDs) {
				return apperrors.ErrUserNotFound
			}
			for i := range members {
				if members[i].TeamID != nil {
					return apperrors.ErrUsersAlreadyInTeam
				}
			}
			if err := userRepo.SetTeam(memberIDs, &team.ID); err != nil {
				return fmt.Errorf("failed to set membership: %w", err)
			}
		}

		if req.LeaderID != nil {
			if !containsID(memberIDs, *req.LeaderID) {
				return apperrors.ErrLeaderNotInTeam
			}
			team.LeaderID = req.LeaderID
			if err := teamRepo.Update(team); err != nil {
				return fmt.Errorf("failed to set leader: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.materialize(team)
}

// Update applies team changes under two authorization tiers: the team's own
// leader may rename or re-charter the team but is forbidden from touching
// membership; privilege 2 and above may change anything. All checks pass
// before any write commits.
func (s *TeamService) Update(caller Caller, teamID uint, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedRequest, err)
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	leaderTier, err := s.resolveTier(caller, team)
	if err != nil {
		return nil, err
	}

	requestedIDs, membershipGiven, err := ParseIDSet(req.UserIDs)
	if err != nil {
		return nil, err
	}
	// A leader-tier caller submitting the userids field at all is denied,
	// even when the submitted set matches the current membership.
	if leaderTier && membershipGiven {
		return nil, apperrors.ErrInsufficientPrivilege
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		teamRepo := repository.NewTeamRepository(tx)
		userRepo := repository.NewUserRepository(tx)

		if req.Name != nil && *req.Name != team.Name {
			if strings.TrimSpace(*req.Name) == "" {
				return apperrors.ErrTeamNameNotSpecified
			}
			if existing, err := teamRepo.GetByName(*req.Name); err == nil && existing != nil {
				return apperrors.ErrTeamExists
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check existing team: %w", err)
			}
			team.Name = *req.Name
		}
		if req.Charter != nil {
			team.Charter = *req.Charter
		}

		current, err := userRepo.GetByTeamID(team.ID)
		if err != nil {
			return fmt.Errorf("failed to load members: %w", err)
		}
		currentIDs := make([]uint, len(current))
		for i, member := range current {
			currentIDs[i] = member.ID
		}

		finalIDs := currentIDs
		if membershipGiven {
			diff := DiffMembership(currentIDs, requestedIDs)

			if len(diff.Added) > 0 {
				added, err := userRepo.GetByIDsForUpdate(diff.Added)
				if err != nil {
					return fmt.Errorf("failed to resolve new members: %w", err)
				}
				if len(added) != len(diff.Added) {
					return apperrors.ErrUserNotFound
				}
				for i := range added {
					// Re-submitting membership in this same team is a legal
					// no-op; membership elsewhere is not.
					if added[i].TeamID != nil && *added[i].TeamID != team.ID {
						return apperrors.ErrUsersAlreadyInTeam
					}
				}
			}

			if err := userRepo.SetTeam(diff.Removed, nil); err != nil {
				return fmt.Errorf("failed to remove members: %w", err)
			}
			if err := userRepo.SetTeam(diff.Added, &team.ID); err != nil {
				return fmt.Errorf("failed to add members: %w", err)
			}

			finalIDs = append(append([]uint{}, diff.Retained...), diff.Added...)
		}

		if req.LeaderID != nil {
			// The leader must be a member of the team as it stands after
			// this update.
			if !containsID(finalIDs, *req.LeaderID) {
				return apperrors.ErrLeaderNotInTeam
			}
			team.LeaderID = req.LeaderID
		} else if team.LeaderID != nil && !containsID(finalIDs, *team.LeaderID) {
			// The previous leader was removed by this membership change.
			team.LeaderID = nil
		}

		if err := teamRepo.Update(team); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrTeamExists
			}
			return fmt.Errorf("failed to update team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.materialize(team)
}

// Delete removes a team unconditionally, clearing every member's team
// pointer in the same transaction
func (s *TeamService) Delete(caller Caller, teamID uint) error {
	if err := Authorize(caller.Privilege, models.PrivilegeStaff); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		teamRepo := repository.NewTeamRepository(tx)

		if err := userRepo.ClearTeamByTeamID(teamID); err != nil {
			return fmt.Errorf("failed to clear membership: %w", err)
		}
		if err := teamRepo.Delete(teamID); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a team materialized with its member list
func (s *TeamService) GetByID(teamID uint) (*TeamResponse, error) {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.materialize(team)
}

// Search retrieves teams whose name contains the query substring
func (s *TeamService) Search(query string, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.Search(query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		resp, err := s.materialize(&teams[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetLeader resolves the team's leader against its current member set. A
// leader_id referencing a non-member should be structurally unreachable,
// but is reported as "no leader" rather than faulting.
func (s *TeamService) GetLeader(teamID uint) (*UserResponse, error) {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team.LeaderID == nil {
		return nil, nil
	}

	members, err := s.userRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	for i := range members {
		if members[i].ID == *team.LeaderID {
			return toUserResponse(&members[i]), nil
		}
	}
	return nil, nil
}

// resolveTier reports whether the caller acts at leader tier for this team.
// Privilege 2 and above act at admin tier; below that, only the team's own
// leader may proceed.
func (s *TeamService) resolveTier(caller Caller, team *models.Team) (leaderTier bool, err error) {
	if caller.Privilege >= models.PrivilegeOrganizer {
		return false, nil
	}
	if team.LeaderID == nil {
		return false, apperrors.ErrInsufficientPrivilege
	}
	user, err := s.userRepo.GetByEmail(caller.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrInsufficientPrivilege
		}
		return false, fmt.Errorf("failed to resolve caller: %w", err)
	}
	if user.ID != *team.LeaderID {
		return false, apperrors.ErrInsufficientPrivilege
	}
	return true, nil
}

// materialize builds the response view of a team including its derived
// member list
func (s *TeamService) materialize(team *models.Team) (*TeamResponse, error) {
	members, err := s.userRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	memberResponses := make([]UserResponse, len(members))
	for i := range members {
		memberResponses[i] = *toUserResponse(&members[i])
	}

	return &TeamResponse{
		ID:       team.ID,
		Name:     team.Name,
		Charter:  team.Charter,
		LeaderID: team.LeaderID,
		Members:  memberResponses,
	}, nil
}

func containsID(ids []uint, id uint) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
