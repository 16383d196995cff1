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

// --- Mock WithdrawalRepository ---
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	args := m.Called(ctx, withdrawalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) FindWithdrawalsByWorker(ctx context.Context, workerEmail string) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, workerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) FindWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) ApproveWithdrawal(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	args := m.Called(ctx, withdrawalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

// --- Test Suite ---
type WithdrawalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockWithdrawalRepository
	service  portssvc.WithdrawalSvcFacade
}

func (suite *WithdrawalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockWithdrawalRepository)
	suite.service = services.NewWithdrawalService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *WithdrawalServiceTestSuite) TestCreateWithdrawal_Success() {
	ctx := context.Background()
	worker := &domain.User{Email: "worker@example.com", Name: "Worker", Coins: 50}
	req := dto.CreateWithdrawalRequest{
		WithdrawCoin:  30,
		PaymentSystem: "bkash",
		AccountNumber: "0123456789",
	}

	suite.mockRepo.On("SaveWithdrawal", ctx, mock.MatchedBy(func(w domain.Withdrawal) bool {
		return w.WorkerEmail == worker.Email &&
			w.WithdrawCoin == 30 &&
			w.PaymentSystem == "bkash" &&
			w.WithdrawalID != ""
	})).Return(nil).Once()

	withdrawal, err := suite.service.CreateWithdrawal(ctx, req, worker)

	suite.Require().NoError(err)
	suite.Equal(int64(30), withdrawal.WithdrawCoin)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestCreateWithdrawal_ExceedsBalance() {
	ctx := context.Background()
	worker := &domain.User{Email: "worker@example.com", Coins: 10}
	req := dto.CreateWithdrawalRequest{
		WithdrawCoin:  11,
		PaymentSystem: "nagad",
		AccountNumber: "0123456789",
	}

	withdrawal, err := suite.service.CreateWithdrawal(ctx, req, worker)

	suite.Require().Error(err)
	suite.Nil(withdrawal)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveWithdrawal")
}

func (suite *WithdrawalServiceTestSuite) TestCreateWithdrawal_ExactBalanceAllowed() {
	ctx := context.Background()
	worker := &domain.User{Email: "worker@example.com", Coins: 25}
	req := dto.CreateWithdrawalRequest{
		WithdrawCoin:  25,
		PaymentSystem: "rocket",
		AccountNumber: "0123456789",
	}

	suite.mockRepo.On("SaveWithdrawal", ctx, mock.AnythingOfType("domain.Withdrawal")).Return(nil).Once()

	withdrawal, err := suite.service.CreateWithdrawal(ctx, req, worker)

	suite.Require().NoError(err)
	suite.Require().NotNil(withdrawal)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestApproveWithdrawal_Success() {
	ctx := context.Background()
	withdrawalID := uuid.NewString()
	approved := &domain.Withdrawal{
		WithdrawalID: withdrawalID,
		WorkerEmail:  "worker@example.com",
		WithdrawCoin: 30,
	}

	suite.mockRepo.On("ApproveWithdrawal", ctx, withdrawalID).Return(approved, nil).Once()

	withdrawal, err := suite.service.ApproveWithdrawal(ctx, withdrawalID)

	suite.Require().NoError(err)
	suite.Equal(approved, withdrawal)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestApproveWithdrawal_RepeatApprovalNotFound() {
	ctx := context.Background()
	withdrawalID := uuid.NewString()

	suite.mockRepo.On("ApproveWithdrawal", ctx, withdrawalID).
		Return(nil, apperrors.ErrNotFound).Once()

	withdrawal, err := suite.service.ApproveWithdrawal(ctx, withdrawalID)

	suite.Require().Error(err)
	suite.Nil(withdrawal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestWithdrawalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}
