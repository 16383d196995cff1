package repositories

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
)

// ReviewReader defines read operations for review data. Reviews are created
// out of band, so there is no writer interface.
type ReviewReader interface {
	// FindReviews retrieves every public review.
	FindReviews(ctx context.Context) ([]domain.Review, error)
}
