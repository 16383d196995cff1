package repositories

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
)

// WithdrawalReader defines read operations for withdrawal data.
type WithdrawalReader interface {
	// FindWithdrawalByID retrieves a specific withdrawal request.
	FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)

	// FindWithdrawalsByWorker retrieves a worker's outstanding requests.
	FindWithdrawalsByWorker(ctx context.Context, workerEmail string) ([]domain.Withdrawal, error)

	// FindWithdrawals retrieves every outstanding withdrawal request.
	FindWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
}

// WithdrawalWriter defines write operations for withdrawal data.
type WithdrawalWriter interface {
	// SaveWithdrawal inserts a new withdrawal request.
	SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error

	// ApproveWithdrawal debits the worker by the requested coin amount and
	// deletes the request as one unit. Returns apperrors.ErrNotFound if the
	// request no longer exists and apperrors.ErrInsufficientFunds if the
	// worker's balance cannot cover the amount.
	ApproveWithdrawal(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)
}

// WithdrawalRepositoryFacade combines all withdrawal-related repository interfaces.
type WithdrawalRepositoryFacade interface {
	WithdrawalReader
	WithdrawalWriter
}
