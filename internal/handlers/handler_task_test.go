package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/earnbuddy/backend/internal/handlers"
	"github.com/earnbuddy/backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TaskService ---
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorEmail string) (*domain.Task, error) {
	args := m.Called(ctx, req, creatorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) ListTasks(ctx context.Context, creatorEmail string) ([]domain.Task, error) {
	args := m.Called(ctx, creatorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, requesterEmail string) (*domain.Task, error) {
	args := m.Called(ctx, taskID, req, requesterEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, taskID string, requesterEmail string) error {
	args := m.Called(ctx, taskID, requesterEmail)
	return args.Error(0)
}

var _ portssvc.TaskSvcFacade = (*MockTaskService)(nil)

// --- Mock UserReaderSvc (for the role middleware) ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserReader) ListTopEarners(ctx context.Context, limit int) ([]domain.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

var _ portssvc.UserReaderSvc = (*MockUserReader)(nil)

// --- Test Suite ---
type TaskHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockTaskService *MockTaskService
	mockUserReader  *MockUserReader
	jwtSecret       string
}

func (suite *TaskHandlerTestSuite) generateTestToken(email string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "earnbuddy-test",
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTaskService = new(MockTaskService)
	suite.mockUserReader = new(MockUserReader)

	rg := suite.router.Group("")
	handlers.RegisterTaskRoutes(rg, suite.mockTaskService, suite.mockUserReader)
}

func (suite *TaskHandlerTestSuite) expectUser(email string, role domain.Role) {
	suite.mockUserReader.On("GetUserByEmail", mock.Anything, email).
		Return(&domain.User{Email: email, Role: role, Coins: 100}, nil)
}

// --- Test Cases ---

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	creatorEmail := "creator@example.com"
	suite.expectUser(creatorEmail, domain.RoleTaskCreator)

	reqBody := dto.CreateTaskRequest{
		Title:      "Watch video",
		Details:    "Watch and comment",
		Quantity:   5,
		PayAmount:  4,
		SubmitInfo: "Screenshot",
	}
	created := &domain.Task{
		TaskID:       uuid.NewString(),
		CreatorEmail: creatorEmail,
		Title:        reqBody.Title,
		Quantity:     5,
		PayAmount:    4,
		Status:       domain.TaskStatusPending,
	}

	suite.mockTaskService.On("CreateTask", mock.Anything, reqBody, creatorEmail).
		Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorEmail))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TaskResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TaskID, resp.TaskID)
	suite.Equal("pending", resp.Status)
	suite.mockTaskService.AssertExpectations(suite.T())
}

func (suite *TaskHandlerTestSuite) TestCreateTask_WorkerForbidden() {
	workerEmail := "worker@example.com"
	suite.expectUser(workerEmail, domain.RoleWorker)

	body, _ := json.Marshal(dto.CreateTaskRequest{
		Title:      "t",
		Details:    "d",
		Quantity:   1,
		PayAmount:  1,
		SubmitInfo: "s",
	})
	req, _ := http.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(workerEmail))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTaskService.AssertNotCalled(suite.T(), "CreateTask")
}

func (suite *TaskHandlerTestSuite) TestCreateTask_InsufficientFunds() {
	creatorEmail := "creator@example.com"
	suite.expectUser(creatorEmail, domain.RoleTaskCreator)

	reqBody := dto.CreateTaskRequest{
		Title:      "Pricey",
		Details:    "d",
		Quantity:   100,
		PayAmount:  100,
		SubmitInfo: "s",
	}
	suite.mockTaskService.On("CreateTask", mock.Anything, reqBody, creatorEmail).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorEmail))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Insufficient coins")
	suite.mockTaskService.AssertExpectations(suite.T())
}

func (suite *TaskHandlerTestSuite) TestCreateTask_NoToken() {
	body, _ := json.Marshal(dto.CreateTaskRequest{
		Title:      "t",
		Details:    "d",
		Quantity:   1,
		PayAmount:  1,
		SubmitInfo: "s",
	})
	req, _ := http.NewRequest(http.MethodPost, "/tasks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserReader.AssertNotCalled(suite.T(), "GetUserByEmail")
}

func (suite *TaskHandlerTestSuite) TestListTasks_CreatorCannotListOthers() {
	creatorEmail := "creator@example.com"
	suite.expectUser(creatorEmail, domain.RoleTaskCreator)

	req, _ := http.NewRequest(http.MethodGet, "/tasks?creatorEmail=other@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorEmail))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTaskService.AssertNotCalled(suite.T(), "ListTasks")
}

func (suite *TaskHandlerTestSuite) TestListTasks_WorkerBrowsesAll() {
	workerEmail := "worker@example.com"
	suite.expectUser(workerEmail, domain.RoleWorker)

	expected := []domain.Task{
		{TaskID: "t1", Title: "First", Status: domain.TaskStatusPending},
		{TaskID: "t2", Title: "Second", Status: domain.TaskStatusPending},
	}
	suite.mockTaskService.On("ListTasks", mock.Anything, "").Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(workerEmail))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.TaskResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockTaskService.AssertExpectations(suite.T())
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_NotFound() {
	creatorEmail := "creator@example.com"
	suite.expectUser(creatorEmail, domain.RoleTaskCreator)

	suite.mockTaskService.On("DeleteTask", mock.Anything, "missing", creatorEmail).
		Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/tasks/missing", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorEmail))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTaskService.AssertExpectations(suite.T())
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
