package dto

import (
	"github.com/earnbuddy/backend/internal/core/domain"
)

// ReviewResponse is the API representation of a public review.
type ReviewResponse struct {
	ReviewID string `json:"reviewID"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL,omitempty"`
	Rating   int    `json:"rating"`
	Content  string `json:"content"`
}

// ToReviewResponses maps a slice of domain reviews.
func ToReviewResponses(rs []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(rs))
	for i, r := range rs {
		out[i] = ReviewResponse{
			ReviewID: r.ReviewID,
			Name:     r.Name,
			PhotoURL: r.PhotoURL,
			Rating:   r.Rating,
			Content:  r.Content,
		}
	}
	return out
}
