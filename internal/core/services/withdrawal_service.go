package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/google/uuid"
)

// withdrawalServiceImpl implements the WithdrawalSvcFacade interface
type withdrawalServiceImpl struct {
	BaseService
	withdrawalRepo portsrepo.WithdrawalRepositoryFacade
}

// NewWithdrawalService creates a new withdrawal service backed by the given repository.
func NewWithdrawalService(withdrawalRepo portsrepo.WithdrawalRepositoryFacade) portssvc.WithdrawalSvcFacade {
	return &withdrawalServiceImpl{withdrawalRepo: withdrawalRepo}
}

var _ portssvc.WithdrawalSvcFacade = (*withdrawalServiceImpl)(nil)

func (s *withdrawalServiceImpl) CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, worker *domain.User) (*domain.Withdrawal, error) {
	// The request is only recorded here; the worker's balance is debited at
	// approval. The cap still applies at request time so a worker cannot
	// queue up more than they hold.
	if req.WithdrawCoin > worker.Coins {
		s.LogDebug(ctx, "Withdrawal exceeds balance",
			slog.String("worker_email", worker.Email),
			slog.Int64("requested", req.WithdrawCoin),
			slog.Int64("balance", worker.Coins))
		return nil, fmt.Errorf("withdrawal amount exceeds balance: %w", apperrors.ErrInsufficientFunds)
	}

	now := time.Now()
	withdrawal := domain.Withdrawal{
		WithdrawalID:  uuid.NewString(),
		WorkerEmail:   worker.Email,
		WorkerName:    worker.Name,
		WithdrawCoin:  req.WithdrawCoin,
		PaymentSystem: req.PaymentSystem,
		AccountNumber: req.AccountNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.withdrawalRepo.SaveWithdrawal(ctx, withdrawal); err != nil {
		s.LogError(ctx, err, "Failed to create withdrawal", slog.String("worker_email", worker.Email))
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}

	s.LogInfo(ctx, "Withdrawal requested",
		slog.String("withdrawal_id", withdrawal.WithdrawalID),
		slog.String("worker_email", worker.Email),
		slog.Int64("withdraw_coin", req.WithdrawCoin))
	return &withdrawal, nil
}

func (s *withdrawalServiceImpl) ListWorkerWithdrawals(ctx context.Context, workerEmail string) ([]domain.Withdrawal, error) {
	ws, err := s.withdrawalRepo.FindWithdrawalsByWorker(ctx, workerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker withdrawals: %w", err)
	}
	return ws, nil
}

func (s *withdrawalServiceImpl) ListAllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	ws, err := s.withdrawalRepo.FindWithdrawals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return ws, nil
}

func (s *withdrawalServiceImpl) ApproveWithdrawal(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.ApproveWithdrawal(ctx, withdrawalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to approve withdrawal", slog.String("withdrawal_id", withdrawalID))
		return nil, fmt.Errorf("failed to approve withdrawal: %w", err)
	}

	s.LogInfo(ctx, "Withdrawal approved",
		slog.String("withdrawal_id", withdrawalID),
		slog.String("worker_email", withdrawal.WorkerEmail),
		slog.Int64("withdraw_coin", withdrawal.WithdrawCoin))
	return withdrawal, nil
}
