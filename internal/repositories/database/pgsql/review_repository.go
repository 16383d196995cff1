package pgsql

import (
	"context"
	"fmt"

	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	"github.com/earnbuddy/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReviewRepository struct {
	BaseRepository
}

func newPgxReviewRepository(db *pgxpool.Pool) portsrepo.ReviewReader {
	return &PgxReviewRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReviewReader = (*PgxReviewRepository)(nil)

func toDomainReview(m models.Review) domain.Review {
	return domain.Review{
		ReviewID: m.ReviewID,
		Name:     m.Name,
		PhotoURL: m.PhotoURL,
		Rating:   m.Rating,
		Content:  m.Content,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxReviewRepository) FindReviews(ctx context.Context) ([]domain.Review, error) {
	query := `
        SELECT review_id, name, photo_url, rating, content, created_at, last_updated_at
        FROM reviews
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var m models.Review
		err := rows.Scan(
			&m.ReviewID,
			&m.Name,
			&m.PhotoURL,
			&m.Rating,
			&m.Content,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, toDomainReview(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", rows.Err())
	}
	return reviews, nil
}
