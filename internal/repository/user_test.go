package repository

import (
	"testing"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	"github.com/celestine-lau/enactus-app/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factory       *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createUser inserts a fresh user directly via gorm
func (suite *UserRepositoryTestSuite) createUser() *models.User {
	user := suite.factory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// createTeam inserts a bare team row for membership tests
func (suite *UserRepositoryTestSuite) createTeam(name string) *models.Team {
	team := &models.Team{Name: name}
	suite.Require().NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.createUser()

	retrieved, err := suite.repo.GetByEmail(user.Email)

	suite.NoError(err)
	suite.Require().NotNil(retrieved)
	suite.Equal(user.ID, retrieved.ID)

	_, err = suite.repo.GetByEmail("nobody@test.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDs tests that unknown ids are silently absent from the result
func (suite *UserRepositoryTestSuite) TestGetByIDs() {
	a := suite.createUser()
	b := suite.createUser()

	users, err := suite.repo.GetByIDs([]uint{a.ID, b.ID, 999999})

	suite.NoError(err)
	suite.Len(users, 2)

	users, err = suite.repo.GetByIDs(nil)
	suite.NoError(err)
	suite.Empty(users)
}

// TestSetTeam tests setting and clearing the team pointer in bulk
func (suite *UserRepositoryTestSuite) TestSetTeam() {
	team := suite.createTeam("Pointer Holders")
	a := suite.createUser()
	b := suite.createUser()
	c := suite.createUser()

	err := suite.repo.SetTeam([]uint{a.ID, b.ID}, &team.ID)
	suite.NoError(err)

	members, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Len(members, 2)

	untouched, err := suite.repo.GetByID(c.ID)
	suite.NoError(err)
	suite.Nil(untouched.TeamID)

	// Clearing with a nil team id.
	err = suite.repo.SetTeam([]uint{a.ID}, nil)
	suite.NoError(err)

	members, err = suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Len(members, 1)
	suite.Equal(b.ID, members[0].ID)

	// An empty id slice is a no-op, not an error.
	suite.NoError(suite.repo.SetTeam(nil, &team.ID))
}

// TestClearTeamByTeamID tests clearing every member of a team at once
func (suite *UserRepositoryTestSuite) TestClearTeamByTeamID() {
	team := suite.createTeam("Disbanding")
	other := suite.createTeam("Bystanders")
	a := suite.createUser()
	b := suite.createUser()
	suite.Require().NoError(suite.repo.SetTeam([]uint{a.ID}, &team.ID))
	suite.Require().NoError(suite.repo.SetTeam([]uint{b.ID}, &other.ID))

	err := suite.repo.ClearTeamByTeamID(team.ID)
	suite.NoError(err)

	members, err := suite.repo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Empty(members)

	bystanders, err := suite.repo.GetByTeamID(other.ID)
	suite.NoError(err)
	suite.Len(bystanders, 1)
}

// TestGetByIDsForUpdate tests the locking variant returns the same rows
func (suite *UserRepositoryTestSuite) TestGetByIDsForUpdate() {
	a := suite.createUser()

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		users, err := NewUserRepository(tx).GetByIDsForUpdate([]uint{a.ID, 999999})
		suite.NoError(err)
		suite.Len(users, 1)
		suite.Equal(a.ID, users[0].ID)
		return nil
	})
	suite.NoError(err)
}

// TestGetAll tests pagination and ordering
func (suite *UserRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 5; i++ {
		suite.createUser()
	}

	users, total, err := suite.repo.GetAll(3, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(users, 3)

	users, total, err = suite.repo.GetAll(3, 3)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(users, 2)
}

// TestUpdate tests persisting field changes
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.createUser()
	user.DisplayName = "Renamed"
	user.Privilege = models.PrivilegeStaff

	err := suite.repo.Update(user)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("Renamed", retrieved.DisplayName)
	suite.Equal(models.PrivilegeStaff, retrieved.Privilege)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
