package repositories

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
)

// StatsRepository defines the read-only aggregation queries backing the
// dashboard endpoints. All sums are 0 when no matching records exist.
type StatsRepository interface {
	// GetWorkerStats aggregates a worker's submission counts and approved earnings.
	GetWorkerStats(ctx context.Context, workerEmail string) (*domain.WorkerStats, error)

	// GetCreatorStats aggregates a creator's pending task slots and payment spend.
	GetCreatorStats(ctx context.Context, creatorEmail string) (*domain.CreatorStats, error)

	// GetAdminStats aggregates platform-wide user, coin and payment totals.
	GetAdminStats(ctx context.Context) (*domain.AdminStats, error)
}
