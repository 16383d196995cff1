package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// statsRepository implements the StatsRepository interface.
type statsRepository struct {
	BaseRepository
}

func newStatsRepository(db *pgxpool.Pool) portsrepo.StatsRepository {
	return &statsRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.StatsRepository = (*statsRepository)(nil)

// GetWorkerStats aggregates a worker's balance, submission count and
// approved-earnings sum in a single query. Sums default to 0.
func (r *statsRepository) GetWorkerStats(ctx context.Context, workerEmail string) (*domain.WorkerStats, error) {
	query := `
        SELECT
            u.coins,
            (SELECT COUNT(*) FROM submissions s WHERE s.worker_email = u.email) AS total_submissions,
            (SELECT COALESCE(SUM(s.pay_amount), 0) FROM submissions s WHERE s.worker_email = u.email AND s.status = 'approved') AS total_earnings
        FROM users u
        WHERE u.email = $1;
    `
	var stats domain.WorkerStats
	err := r.Pool.QueryRow(ctx, query, workerEmail).Scan(
		&stats.Coins,
		&stats.TotalSubmissions,
		&stats.TotalEarnings,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying worker stats: %w", err)
	}
	return &stats, nil
}

// GetCreatorStats aggregates a creator's balance, pending task slots and
// total payment spend. Sums default to 0.
func (r *statsRepository) GetCreatorStats(ctx context.Context, creatorEmail string) (*domain.CreatorStats, error) {
	query := `
        SELECT
            u.coins,
            (SELECT COALESCE(SUM(t.quantity), 0) FROM tasks t WHERE t.creator_email = u.email AND t.status = 'pending') AS pending_task_slots,
            (SELECT COALESCE(SUM(p.price), 0) FROM payments p WHERE p.email = u.email) AS total_paid
        FROM users u
        WHERE u.email = $1;
    `
	var stats domain.CreatorStats
	err := r.Pool.QueryRow(ctx, query, creatorEmail).Scan(
		&stats.Coins,
		&stats.PendingTaskSlots,
		&stats.TotalPaid,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying creator stats: %w", err)
	}
	return &stats, nil
}

// GetAdminStats aggregates platform-wide totals. Sums default to 0.
func (r *statsRepository) GetAdminStats(ctx context.Context) (*domain.AdminStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM users) AS total_users,
            (SELECT COALESCE(SUM(coins), 0) FROM users) AS total_coins,
            (SELECT COALESCE(SUM(price), 0) FROM payments) AS total_payments;
    `
	var stats domain.AdminStats
	err := r.Pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.TotalCoins,
		&stats.TotalPayments,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying admin stats: %w", err)
	}
	return &stats, nil
}
