package services

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
	"github.com/earnbuddy/backend/internal/dto"
)

// WithdrawalSvcFacade defines the withdrawal ledger operations.
type WithdrawalSvcFacade interface {
	// CreateWithdrawal records a worker's cash-out request. The requested
	// amount must not exceed the worker's current balance.
	CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, worker *domain.User) (*domain.Withdrawal, error)

	// ListWorkerWithdrawals retrieves a worker's outstanding requests.
	ListWorkerWithdrawals(ctx context.Context, workerEmail string) ([]domain.Withdrawal, error)

	// ListAllWithdrawals retrieves every outstanding request (admin surface).
	ListAllWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)

	// ApproveWithdrawal debits the worker and removes the request, exactly
	// once; a second approval of the same id fails with apperrors.ErrNotFound.
	ApproveWithdrawal(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)
}
