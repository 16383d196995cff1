package pgsql

import (
	"context"
	"fmt"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back a transaction. Safe to defer after a successful commit.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) {
	_ = tx.Rollback(ctx)
}

// adjustUserCoins applies a coin delta to a user's balance inside tx. The
// WHERE clause both finds the row and refuses any update that would drive the
// balance negative, so concurrent requests cannot lose updates.
func adjustUserCoins(ctx context.Context, tx pgx.Tx, email string, delta int64) error {
	cmdTag, err := tx.Exec(ctx, `
        UPDATE users
        SET coins = coins + $1, last_updated_at = now()
        WHERE email = $2 AND coins + $1 >= 0;
    `, delta, email)
	if err != nil {
		return fmt.Errorf("failed to adjust coins for %s: %w", email, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing user from an insufficient balance
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check user existence for %s: %w", email, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrInsufficientFunds
	}
	return nil
}
