package repository

import (
	"fmt"
	"testing"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	"github.com/celestine-lau/enactus-app/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTeam inserts a team directly via gorm
func (suite *TeamRepositoryTestSuite) createTeam(name string) *models.Team {
	team := &models.Team{Name: name, Charter: "charter for " + name}
	suite.Require().NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

// TestGetByID tests retrieving a team by id
func (suite *TeamRepositoryTestSuite) TestGetByID() {
	team := suite.createTeam("Lookup")

	retrieved, err := suite.repo.GetByID(team.ID)

	suite.NoError(err)
	suite.Require().NotNil(retrieved)
	suite.Equal("Lookup", retrieved.Name)

	_, err = suite.repo.GetByID(999999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByName tests exact name lookup
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	suite.createTeam("Exact Match")

	retrieved, err := suite.repo.GetByName("Exact Match")
	suite.NoError(err)
	suite.Require().NotNil(retrieved)

	_, err = suite.repo.GetByName("exact match")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSearch tests substring matching with pagination
func (suite *TeamRepositoryTestSuite) TestSearch() {
	for i := 0; i < 4; i++ {
		suite.createTeam(fmt.Sprintf("Alpha Squad %d", i))
	}
	suite.createTeam("Beta Crew")

	teams, total, err := suite.repo.Search("Alpha", 3, 0)
	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(teams, 3)

	teams, total, err = suite.repo.Search("Alpha", 3, 3)
	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(teams, 1)

	// Empty query matches everything.
	_, total, err = suite.repo.Search("", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
}

// TestCreateDuplicateName tests that a unique violation surfaces as
// gorm.ErrDuplicatedKey rather than a raw driver error
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	suite.createTeam("Clash")

	err := suite.repo.Create(&models.Team{Name: "Clash"})

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestUpdate tests persisting a leader assignment
func (suite *TeamRepositoryTestSuite) TestUpdate() {
	team := suite.createTeam("Promotable")
	leaderID := uint(42)
	team.LeaderID = &leaderID

	err := suite.repo.Update(team)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Require().NotNil(retrieved.LeaderID)
	suite.Equal(leaderID, *retrieved.LeaderID)
}

// TestDelete tests removing a team row
func (suite *TeamRepositoryTestSuite) TestDelete() {
	team := suite.createTeam("Short Lived")

	err := suite.repo.Delete(team.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
