package repositories

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
)

// SubmissionReader defines read operations for submission data.
type SubmissionReader interface {
	// FindSubmissionByID retrieves a specific submission.
	FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error)

	// FindSubmissionsByWorker retrieves all submissions made by a worker.
	FindSubmissionsByWorker(ctx context.Context, workerEmail string) ([]domain.Submission, error)

	// FindSubmissionsByCreator retrieves submissions against a creator's tasks,
	// optionally filtered by status (empty status means all).
	FindSubmissionsByCreator(ctx context.Context, creatorEmail string, status domain.SubmissionStatus) ([]domain.Submission, error)

	// FindSubmissions retrieves every submission.
	FindSubmissions(ctx context.Context) ([]domain.Submission, error)
}

// SubmissionWriter defines write operations for submission data.
type SubmissionWriter interface {
	// SaveSubmission inserts a new submission.
	SaveSubmission(ctx context.Context, submission domain.Submission) error

	// ApproveSubmission flips a pending submission to approved and credits the
	// worker by its pay amount as one unit. Returns
	// apperrors.ErrInvalidTransition if the submission is not pending.
	ApproveSubmission(ctx context.Context, submissionID string) (*domain.Submission, error)

	// RejectSubmission flips a pending submission to rejected. Returns
	// apperrors.ErrInvalidTransition if the submission is not pending.
	RejectSubmission(ctx context.Context, submissionID string) (*domain.Submission, error)
}

// SubmissionRepositoryFacade combines all submission-related repository interfaces.
type SubmissionRepositoryFacade interface {
	SubmissionReader
	SubmissionWriter
}
