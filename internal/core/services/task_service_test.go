package services_test

import (
	"context"
	"testing"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/core/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TaskRepository ---
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) FindTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) FindTasksByCreator(ctx context.Context, creatorEmail string) ([]domain.Task, error) {
	args := m.Called(ctx, creatorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) SaveTaskWithDebit(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTaskWithRefund(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// --- Test Suite ---
type TaskServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTaskRepository
	service  portssvc.TaskSvcFacade
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTaskRepository)
	suite.service = services.NewTaskService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *TaskServiceTestSuite) TestCreateTask_ReservesQuantityTimesPayAmount() {
	ctx := context.Background()
	req := dto.CreateTaskRequest{
		Title:      "Watch video",
		Details:    "Watch and comment",
		Quantity:   5,
		PayAmount:  4,
		SubmitInfo: "Screenshot",
	}
	creatorEmail := "creator@example.com"

	suite.mockRepo.On("SaveTaskWithDebit", ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.CreatorEmail == creatorEmail &&
			t.Status == domain.TaskStatusPending &&
			t.ReservedCoins() == 20 &&
			t.TaskID != ""
	})).Return(nil).Once()

	task, err := suite.service.CreateTask(ctx, req, creatorEmail)

	suite.Require().NoError(err)
	suite.Require().NotNil(task)
	suite.Equal(int64(20), task.ReservedCoins())
	suite.Equal(domain.TaskStatusPending, task.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreateTask_InsufficientFundsPropagates() {
	ctx := context.Background()
	req := dto.CreateTaskRequest{
		Title:      "Expensive",
		Details:    "Too rich for us",
		Quantity:   100,
		PayAmount:  100,
		SubmitInfo: "n/a",
	}

	suite.mockRepo.On("SaveTaskWithDebit", ctx, mock.AnythingOfType("domain.Task")).
		Return(apperrors.ErrInsufficientFunds).Once()

	task, err := suite.service.CreateTask(ctx, req, "poor@example.com")

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestUpdateTask_NonOwnerForbidden() {
	ctx := context.Background()
	taskID := uuid.NewString()
	existing := &domain.Task{TaskID: taskID, CreatorEmail: "owner@example.com"}

	suite.mockRepo.On("FindTaskByID", ctx, taskID).Return(existing, nil).Once()

	task, err := suite.service.UpdateTask(ctx, taskID, dto.UpdateTaskRequest{
		Title:      "New",
		Details:    "New",
		SubmitInfo: "New",
	}, "intruder@example.com")

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTask")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestUpdateTask_OwnerEditsEditableFieldsOnly() {
	ctx := context.Background()
	taskID := uuid.NewString()
	existing := &domain.Task{
		TaskID:       taskID,
		CreatorEmail: "owner@example.com",
		Title:        "Old",
		Quantity:     3,
		PayAmount:    7,
	}

	suite.mockRepo.On("FindTaskByID", ctx, taskID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTask", ctx, mock.MatchedBy(func(t domain.Task) bool {
		// quantity and pay amount stay frozen
		return t.Title == "New title" && t.Quantity == 3 && t.PayAmount == 7
	})).Return(nil).Once()

	task, err := suite.service.UpdateTask(ctx, taskID, dto.UpdateTaskRequest{
		Title:      "New title",
		Details:    "New details",
		SubmitInfo: "New submit info",
	}, "owner@example.com")

	suite.Require().NoError(err)
	suite.Equal("New title", task.Title)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestDeleteTask_NonOwnerForbidden() {
	ctx := context.Background()
	taskID := uuid.NewString()
	existing := &domain.Task{TaskID: taskID, CreatorEmail: "owner@example.com"}

	suite.mockRepo.On("FindTaskByID", ctx, taskID).Return(existing, nil).Once()

	err := suite.service.DeleteTask(ctx, taskID, "intruder@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTaskWithRefund")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestDeleteTask_OwnerTriggersRefund() {
	ctx := context.Background()
	taskID := uuid.NewString()
	existing := &domain.Task{
		TaskID:       taskID,
		CreatorEmail: "owner@example.com",
		Quantity:     2,
		PayAmount:    5,
	}

	suite.mockRepo.On("FindTaskByID", ctx, taskID).Return(existing, nil).Once()
	suite.mockRepo.On("DeleteTaskWithRefund", ctx, *existing).Return(nil).Once()

	err := suite.service.DeleteTask(ctx, taskID, "owner@example.com")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestDeleteTask_NotFound() {
	ctx := context.Background()
	taskID := uuid.NewString()

	suite.mockRepo.On("FindTaskByID", ctx, taskID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTask(ctx, taskID, "owner@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestListTasks_CreatorFilter() {
	ctx := context.Background()
	expected := []domain.Task{{TaskID: "t1", CreatorEmail: "c@example.com"}}

	suite.mockRepo.On("FindTasksByCreator", ctx, "c@example.com").Return(expected, nil).Once()

	tasks, err := suite.service.ListTasks(ctx, "c@example.com")

	suite.Require().NoError(err)
	suite.Equal(expected, tasks)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTasks")
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
