package services

import (
	"context"
	"fmt"

	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
)

// reviewServiceImpl implements the ReviewSvcFacade interface
type reviewServiceImpl struct {
	BaseService
	reviewRepo portsrepo.ReviewReader
}

// NewReviewService creates a new review service backed by the given reader.
func NewReviewService(reviewRepo portsrepo.ReviewReader) portssvc.ReviewSvcFacade {
	return &reviewServiceImpl{reviewRepo: reviewRepo}
}

var _ portssvc.ReviewSvcFacade = (*reviewServiceImpl)(nil)

func (s *reviewServiceImpl) ListReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.FindReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
