package repository

import (
	"testing"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	"github.com/celestine-lau/enactus-app/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TaskStatusRepositoryTestSuite tests the TaskStatusRepository
type TaskStatusRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TaskStatusRepository
	userFactory   *testutils.UserFactory
	taskFactory   *testutils.TaskFactory
}

// SetupSuite runs before all tests in the suite
func (suite *TaskStatusRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTaskStatusRepository(suite.baseTestSuite.DB)
	suite.userFactory = testutils.NewUserFactory()
	suite.taskFactory = testutils.NewTaskFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TaskStatusRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TaskStatusRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TaskStatusRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TaskStatusRepositoryTestSuite) createUser() *models.User {
	user := suite.userFactory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

func (suite *TaskStatusRepositoryTestSuite) createTask() *models.Task {
	task := suite.taskFactory.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(task).Error)
	return task
}

// TestCreateBatch tests inserting multiple status rows at once
func (suite *TaskStatusRepositoryTestSuite) TestCreateBatch() {
	user := suite.createUser()
	taskA := suite.createTask()
	taskB := suite.createTask()

	err := suite.repo.CreateBatch([]models.TaskStatus{
		{UserID: user.ID, TaskID: taskA.ID, Status: models.StatusAvailable},
		{UserID: user.ID, TaskID: taskB.ID, Status: models.StatusAvailable},
	})
	suite.NoError(err)

	statuses, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Len(statuses, 2)

	// An empty batch is a no-op, not an error.
	suite.NoError(suite.repo.CreateBatch(nil))
}

// TestCompositeUniqueness tests that a batch hitting an existing
// (user, task) pair succeeds, skips the duplicate and leaves the existing
// row untouched
func (suite *TaskStatusRepositoryTestSuite) TestCompositeUniqueness() {
	user := suite.createUser()
	taskA := suite.createTask()
	taskB := suite.createTask()

	err := suite.repo.CreateBatch([]models.TaskStatus{
		{UserID: user.ID, TaskID: taskA.ID, Status: models.StatusCompleted, Points: 70},
	})
	suite.Require().NoError(err)

	err = suite.repo.CreateBatch([]models.TaskStatus{
		{UserID: user.ID, TaskID: taskA.ID, Status: models.StatusAvailable},
		{UserID: user.ID, TaskID: taskB.ID, Status: models.StatusAvailable},
	})
	suite.NoError(err)

	statuses, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Require().Len(statuses, 2)
	byTask := make(map[uint]models.TaskStatus, len(statuses))
	for _, status := range statuses {
		byTask[status.TaskID] = status
	}
	suite.Equal(models.StatusCompleted, byTask[taskA.ID].Status)
	suite.Equal(70, byTask[taskA.ID].Points)
	suite.Equal(models.StatusAvailable, byTask[taskB.ID].Status)
}

// TestGetByUserAndTaskIDs tests loading the status rows for a cross product
func (suite *TaskStatusRepositoryTestSuite) TestGetByUserAndTaskIDs() {
	userA := suite.createUser()
	userB := suite.createUser()
	task := suite.createTask()
	other := suite.createTask()

	err := suite.repo.CreateBatch([]models.TaskStatus{
		{UserID: userA.ID, TaskID: task.ID, Status: models.StatusAvailable},
		{UserID: userB.ID, TaskID: task.ID, Status: models.StatusCompleted, Points: 50},
		{UserID: userA.ID, TaskID: other.ID, Status: models.StatusAvailable},
	})
	suite.Require().NoError(err)

	statuses, err := suite.repo.GetByUserAndTaskIDs([]uint{userA.ID, userB.ID}, []uint{task.ID})
	suite.NoError(err)
	suite.Len(statuses, 2)
	for _, status := range statuses {
		suite.Equal(task.ID, status.TaskID)
	}
}

// TestUpdateStatus tests advancing a single row's progress state
func (suite *TaskStatusRepositoryTestSuite) TestUpdateStatus() {
	user := suite.createUser()
	task := suite.createTask()

	err := suite.repo.CreateBatch([]models.TaskStatus{
		{UserID: user.ID, TaskID: task.ID, Status: models.StatusUnavailable},
	})
	suite.Require().NoError(err)

	statuses, err := suite.repo.GetByUserID(user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(statuses, 1)

	err = suite.repo.UpdateStatus(statuses[0].ID, models.StatusAvailable)
	suite.NoError(err)

	statuses, err = suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Require().Len(statuses, 1)
	suite.Equal(models.StatusAvailable, statuses[0].Status)
}

// TestTaskStatusRepositoryTestSuite runs the test suite
func TestTaskStatusRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskStatusRepositoryTestSuite))
}
