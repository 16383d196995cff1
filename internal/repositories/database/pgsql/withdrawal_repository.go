package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	"github.com/earnbuddy/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWithdrawalRepository struct {
	BaseRepository
}

func newPgxWithdrawalRepository(db *pgxpool.Pool) portsrepo.WithdrawalRepositoryFacade {
	return &PgxWithdrawalRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.WithdrawalRepositoryFacade = (*PgxWithdrawalRepository)(nil)

func toModelWithdrawal(d domain.Withdrawal) models.Withdrawal {
	return models.Withdrawal{
		WithdrawalID:  d.WithdrawalID,
		WorkerEmail:   d.WorkerEmail,
		WorkerName:    d.WorkerName,
		WithdrawCoin:  d.WithdrawCoin,
		PaymentSystem: d.PaymentSystem,
		AccountNumber: d.AccountNumber,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainWithdrawal(m models.Withdrawal) domain.Withdrawal {
	return domain.Withdrawal{
		WithdrawalID:  m.WithdrawalID,
		WorkerEmail:   m.WorkerEmail,
		WorkerName:    m.WorkerName,
		WithdrawCoin:  m.WithdrawCoin,
		PaymentSystem: m.PaymentSystem,
		AccountNumber: m.AccountNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const withdrawalColumns = `withdrawal_id, worker_email, worker_name, withdraw_coin, payment_system, account_number, created_at, last_updated_at`

func scanWithdrawal(row pgx.Row) (*models.Withdrawal, error) {
	var m models.Withdrawal
	err := row.Scan(
		&m.WithdrawalID,
		&m.WorkerEmail,
		&m.WorkerName,
		&m.WithdrawCoin,
		&m.PaymentSystem,
		&m.AccountNumber,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	m := toModelWithdrawal(withdrawal)
	query := `
        INSERT INTO withdrawals (withdrawal_id, worker_email, worker_name, withdraw_coin, payment_system, account_number, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.WithdrawalID,
		m.WorkerEmail,
		m.WorkerName,
		m.WithdrawCoin,
		m.PaymentSystem,
		m.AccountNumber,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save withdrawal: %w", err)
	}
	return nil
}

func (r *PgxWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE withdrawal_id = $1;`
	m, err := scanWithdrawal(r.Pool.QueryRow(ctx, query, withdrawalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find withdrawal by ID %s: %w", withdrawalID, err)
	}
	w := toDomainWithdrawal(*m)
	return &w, nil
}

func (r *PgxWithdrawalRepository) FindWithdrawalsByWorker(ctx context.Context, workerEmail string) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE worker_email = $1 ORDER BY created_at DESC;`
	return r.queryWithdrawals(ctx, query, workerEmail)
}

func (r *PgxWithdrawalRepository) FindWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY created_at DESC;`
	return r.queryWithdrawals(ctx, query)
}

func (r *PgxWithdrawalRepository) queryWithdrawals(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}
	defer rows.Close()

	ws := []domain.Withdrawal{}
	for rows.Next() {
		m, err := scanWithdrawal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan withdrawal row: %w", err)
		}
		ws = append(ws, toDomainWithdrawal(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating withdrawal rows: %w", rows.Err())
	}
	return ws, nil
}

// ApproveWithdrawal deletes the request and debits the worker's balance within
// a single DB transaction. Deleting first makes a second approval of the same
// id fail with ErrNotFound before any balance effect.
func (r *PgxWithdrawalRepository) ApproveWithdrawal(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `DELETE FROM withdrawals WHERE withdrawal_id = $1 RETURNING ` + withdrawalColumns + `;`
	m, err := scanWithdrawal(tx.QueryRow(ctx, query, withdrawalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete withdrawal %s: %w", withdrawalID, err)
	}

	if err := adjustUserCoins(ctx, tx, m.WorkerEmail, -m.WithdrawCoin); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	w := toDomainWithdrawal(*m)
	return &w, nil
}
