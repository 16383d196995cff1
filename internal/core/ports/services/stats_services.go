package services

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
)

// StatsSvcFacade defines the read-only dashboard rollups.
type StatsSvcFacade interface {
	// GetWorkerStats returns a worker's balance, submission count and approved
	// earnings sum.
	GetWorkerStats(ctx context.Context, workerEmail string) (*domain.WorkerStats, error)

	// GetCreatorStats returns a creator's balance, pending task slots and
	// total payment spend.
	GetCreatorStats(ctx context.Context, creatorEmail string) (*domain.CreatorStats, error)

	// GetAdminStats returns platform-wide totals.
	GetAdminStats(ctx context.Context) (*domain.AdminStats, error)
}

// ReviewSvcFacade exposes the public read-only review feed.
type ReviewSvcFacade interface {
	// ListReviews returns every public review.
	ListReviews(ctx context.Context) ([]domain.Review, error)
}
