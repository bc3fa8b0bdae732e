package service_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"
	"github.com/celestine-lau/enactus-app/internal/repository"
	"github.com/celestine-lau/enactus-app/internal/service"
	"github.com/celestine-lau/enactus-app/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// TeamServiceTestSuite exercises the team consistency engine against a real
// database: membership diffs, leader invariants and transactional rollback
// all depend on actual SQL behavior, so mocks are not enough here.
type TeamServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	teamService   *service.TeamService
	userFactory   *testutils.UserFactory
	organizer     service.Caller
	staff         service.Caller
}

// SetupSuite runs before all tests in the suite
func (suite *TeamServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.teamService = service.NewTeamService(
		db,
		repository.NewTeamRepository(db),
		repository.NewUserRepository(db),
		validator.New(),
	)
	suite.userFactory = testutils.NewUserFactory()
	suite.organizer = service.Caller{Email: "organizer@test.com", Privilege: models.PrivilegeOrganizer}
	suite.staff = service.Caller{Email: "staff@test.com", Privilege: models.PrivilegeStaff}
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createUsers inserts n fresh users with no team and returns them
func (suite *TeamServiceTestSuite) createUsers(n int) []*models.User {
	users := make([]*models.User, n)
	for i := range users {
		user := suite.userFactory.Create()
		suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
		users[i] = user
	}
	return users
}

// idList renders user ids as the JSON array the request field expects
func idList(users ...*models.User) json.RawMessage {
	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	b, _ := json.Marshal(ids)
	return b
}

// memberIDs reloads the team's current member id set from the database
func (suite *TeamServiceTestSuite) memberIDs(teamID uint) []uint {
	members, err := repository.NewUserRepository(suite.baseTestSuite.DB).GetByTeamID(teamID)
	suite.Require().NoError(err)
	ids := make([]uint, len(members))
	for i := range members {
		ids[i] = members[i].ID
	}
	return ids
}

func (suite *TeamServiceTestSuite) TestCreateWithMembersAndLeader() {
	users := suite.createUsers(3)

	resp, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:     "Pioneers",
		Charter:  "Build things",
		UserIDs:  idList(users...),
		LeaderID: &users[0].ID,
	})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("Pioneers", resp.Name)
	suite.Require().NotNil(resp.LeaderID)
	suite.Equal(users[0].ID, *resp.LeaderID)
	suite.Len(resp.Members, 3)
	suite.ElementsMatch([]uint{users[0].ID, users[1].ID, users[2].ID}, suite.memberIDs(resp.ID))
}

func (suite *TeamServiceTestSuite) TestCreateRequiresOrganizer() {
	member := service.Caller{Email: "member@test.com", Privilege: models.PrivilegeMember}

	resp, err := suite.teamService.Create(member, &service.CreateTeamRequest{Name: "Denied"})

	suite.ErrorIs(err, apperrors.ErrInsufficientPrivilege)
	suite.Nil(resp)
}

func (suite *TeamServiceTestSuite) TestCreateEmptyNameRejected() {
	resp, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{Name: "   "})

	suite.ErrorIs(err, apperrors.ErrTeamNameNotSpecified)
	suite.Nil(resp)
}

func (suite *TeamServiceTestSuite) TestCreateDuplicateName() {
	_, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{Name: "Taken"})
	suite.Require().NoError(err)

	resp, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{Name: "Taken"})

	suite.ErrorIs(err, apperrors.ErrTeamExists)
	suite.Nil(resp)
}

// TestCreateRollsBackOnUnknownMember is the core atomicity property: one bad
// member id fails the whole creation, leaving no team row and no membership
// changes behind.
func (suite *TeamServiceTestSuite) TestCreateRollsBackOnUnknownMember() {
	users := suite.createUsers(2)
	ids := []uint{users[0].ID, users[1].ID, 999999}
	raw, _ := json.Marshal(ids)

	resp, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:    "Ghost Team",
		UserIDs: raw,
	})

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
	suite.Nil(resp)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Team{}).Where("name = ?", "Ghost Team").Count(&count)
	suite.Zero(count)

	for _, user := range users {
		reloaded, err := repository.NewUserRepository(suite.baseTestSuite.DB).GetByID(user.ID)
		suite.Require().NoError(err)
		suite.Nil(reloaded.TeamID)
	}
}

func (suite *TeamServiceTestSuite) TestCreateRejectsAlreadyTeamedMember() {
	users := suite.createUsers(2)
	_, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:    "First",
		UserIDs: idList(users[0]),
	})
	suite.Require().NoError(err)

	resp, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:    "Second",
		UserIDs: idList(users[0], users[1]),
	})

	suite.ErrorIs(err, apperrors.ErrUsersAlreadyInTeam)
	suite.Nil(resp)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Team{}).Where("name = ?", "Second").Count(&count)
	suite.Zero(count)
}

func (suite *TeamServiceTestSuite) TestCreateLeaderMustBeMember() {
	users := suite.createUsers(2)
	outsider := suite.createUsers(1)[0]

	resp, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:     "Leaderless",
		UserIDs:  idList(users...),
		LeaderID: &outsider.ID,
	})

	suite.ErrorIs(err, apperrors.ErrLeaderNotInTeam)
	suite.Nil(resp)

	// The failed leader check must also roll back the membership writes.
	reloaded, err := repository.NewUserRepository(suite.baseTestSuite.DB).GetByID(users[0].ID)
	suite.Require().NoError(err)
	suite.Nil(reloaded.TeamID)
}

func (suite *TeamServiceTestSuite) TestUpdateMembershipDiff() {
	users := suite.createUsers(4)
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:    "Shifting",
		UserIDs: idList(users[0], users[1], users[2]),
	})
	suite.Require().NoError(err)

	// Drop users[0], keep users[1] and users[2], add users[3].
	resp, err := suite.teamService.Update(suite.organizer, team.ID, &service.UpdateTeamRequest{
		UserIDs: idList(users[1], users[2], users[3]),
	})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.ElementsMatch([]uint{users[1].ID, users[2].ID, users[3].ID}, suite.memberIDs(team.ID))

	removed, err := repository.NewUserRepository(suite.baseTestSuite.DB).GetByID(users[0].ID)
	suite.Require().NoError(err)
	suite.Nil(removed.TeamID)
}

func (suite *TeamServiceTestSuite) TestUpdateRemovedLeaderIsCleared() {
	users := suite.createUsers(2)
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:     "Decapitated",
		UserIDs:  idList(users...),
		LeaderID: &users[0].ID,
	})
	suite.Require().NoError(err)

	resp, err := suite.teamService.Update(suite.organizer, team.ID, &service.UpdateTeamRequest{
		UserIDs: idList(users[1]),
	})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Nil(resp.LeaderID)

	leader, err := suite.teamService.GetLeader(team.ID)
	suite.NoError(err)
	suite.Nil(leader)
}

func (suite *TeamServiceTestSuite) TestUpdateLeaderMustBeInFinalSet() {
	users := suite.createUsers(3)
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:    "Strict",
		UserIDs: idList(users[0], users[1]),
	})
	suite.Require().NoError(err)

	// users[2] is not in the post-update membership.
	resp, err := suite.teamService.Update(suite.organizer, team.ID, &service.UpdateTeamRequest{
		UserIDs:  idList(users[0], users[1]),
		LeaderID: &users[2].ID,
	})

	suite.ErrorIs(err, apperrors.ErrLeaderNotInTeam)
	suite.Nil(resp)
}

func (suite *TeamServiceTestSuite) TestUpdateResubmittingOwnMembersIsNoOp() {
	users := suite.createUsers(2)
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:    "Stable",
		UserIDs: idList(users...),
	})
	suite.Require().NoError(err)

	resp, err := suite.teamService.Update(suite.organizer, team.ID, &service.UpdateTeamRequest{
		UserIDs: idList(users...),
	})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.ElementsMatch([]uint{users[0].ID, users[1].ID}, suite.memberIDs(team.ID))
}

func (suite *TeamServiceTestSuite) TestUpdatePoachingFromAnotherTeamRejected() {
	users := suite.createUsers(3)
	_, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:    "Holders",
		UserIDs: idList(users[0]),
	})
	suite.Require().NoError(err)
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:    "Poachers",
		UserIDs: idList(users[1]),
	})
	suite.Require().NoError(err)

	resp, err := suite.teamService.Update(suite.organizer, team.ID, &service.UpdateTeamRequest{
		UserIDs: idList(users[0], users[1], users[2]),
	})

	suite.ErrorIs(err, apperrors.ErrUsersAlreadyInTeam)
	suite.Nil(resp)
	suite.ElementsMatch([]uint{users[1].ID}, suite.memberIDs(team.ID))
}

// TestUpdateLeaderTier covers the reduced authority of a team's own leader:
// rename and re-charter are allowed, but submitting the userids field at all
// is denied, even when the set matches the current membership.
func (suite *TeamServiceTestSuite) TestUpdateLeaderTier() {
	users := suite.createUsers(2)
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:     "Led",
		UserIDs:  idList(users...),
		LeaderID: &users[0].ID,
	})
	suite.Require().NoError(err)
	leaderCaller := service.Caller{Email: users[0].Email, Privilege: users[0].Privilege}

	newName := "Renamed by Leader"
	resp, err := suite.teamService.Update(leaderCaller, team.ID, &service.UpdateTeamRequest{
		Name: &newName,
	})
	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(newName, resp.Name)

	resp, err = suite.teamService.Update(leaderCaller, team.ID, &service.UpdateTeamRequest{
		UserIDs: idList(users...),
	})
	suite.ErrorIs(err, apperrors.ErrInsufficientPrivilege)
	suite.Nil(resp)
}

func (suite *TeamServiceTestSuite) TestUpdateNonLeaderMemberDenied() {
	users := suite.createUsers(2)
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:     "Gated",
		UserIDs:  idList(users...),
		LeaderID: &users[0].ID,
	})
	suite.Require().NoError(err)
	memberCaller := service.Caller{Email: users[1].Email, Privilege: users[1].Privilege}

	newName := "Mutiny"
	resp, err := suite.teamService.Update(memberCaller, team.ID, &service.UpdateTeamRequest{
		Name: &newName,
	})

	suite.ErrorIs(err, apperrors.ErrInsufficientPrivilege)
	suite.Nil(resp)
}

func (suite *TeamServiceTestSuite) TestUpdateTeamNotFound() {
	newName := "Nowhere"
	resp, err := suite.teamService.Update(suite.organizer, 424242, &service.UpdateTeamRequest{
		Name: &newName,
	})

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	suite.Nil(resp)
}

func (suite *TeamServiceTestSuite) TestDeleteClearsMembership() {
	users := suite.createUsers(2)
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:    "Doomed",
		UserIDs: idList(users...),
	})
	suite.Require().NoError(err)

	err = suite.teamService.Delete(suite.staff, team.ID)
	suite.NoError(err)

	_, err = suite.teamService.GetByID(team.ID)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)

	for _, user := range users {
		reloaded, err := repository.NewUserRepository(suite.baseTestSuite.DB).GetByID(user.ID)
		suite.Require().NoError(err)
		suite.Nil(reloaded.TeamID)
	}
}

func (suite *TeamServiceTestSuite) TestDeleteRequiresStaff() {
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{Name: "Safe"})
	suite.Require().NoError(err)

	err = suite.teamService.Delete(suite.organizer, team.ID)

	suite.ErrorIs(err, apperrors.ErrInsufficientPrivilege)
}

func (suite *TeamServiceTestSuite) TestSearchPagination() {
	for i := 0; i < 5; i++ {
		_, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
			Name: fmt.Sprintf("Search Target %d", i),
		})
		suite.Require().NoError(err)
	}
	_, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{Name: "Unrelated"})
	suite.Require().NoError(err)

	resp, err := suite.teamService.Search("Search Target", 1, 3)
	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(int64(5), resp.Total)
	suite.Len(resp.Teams, 3)

	resp, err = suite.teamService.Search("Search Target", 2, 3)
	suite.NoError(err)
	suite.Len(resp.Teams, 2)
}

func (suite *TeamServiceTestSuite) TestGetLeader() {
	users := suite.createUsers(2)
	team, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{
		Name:     "Led Again",
		UserIDs:  idList(users...),
		LeaderID: &users[1].ID,
	})
	suite.Require().NoError(err)

	leader, err := suite.teamService.GetLeader(team.ID)
	suite.NoError(err)
	suite.Require().NotNil(leader)
	suite.Equal(users[1].ID, leader.ID)

	bare, err := suite.teamService.Create(suite.organizer, &service.CreateTeamRequest{Name: "No Head"})
	suite.Require().NoError(err)

	leader, err = suite.teamService.GetLeader(bare.ID)
	suite.NoError(err)
	suite.Nil(leader)

	_, err = suite.teamService.GetLeader(424242)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestDiffMembership pins the three-set partition the engine is built on
func TestDiffMembership(t *testing.T) {
	diff := service.DiffMembership([]uint{1, 2, 3}, []uint{2, 3, 4})

	if len(diff.Removed) != 1 || diff.Removed[0] != 1 {
		t.Errorf("expected removed [1], got %v", diff.Removed)
	}
	if len(diff.Retained) != 2 || diff.Retained[0] != 2 || diff.Retained[1] != 3 {
		t.Errorf("expected retained [2 3], got %v", diff.Retained)
	}
	if len(diff.Added) != 1 || diff.Added[0] != 4 {
		t.Errorf("expected added [4], got %v", diff.Added)
	}
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
