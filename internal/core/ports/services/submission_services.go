package services

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
	"github.com/earnbuddy/backend/internal/dto"
)

// SubmissionSvcFacade defines the submission ledger operations.
type SubmissionSvcFacade interface {
	// CreateSubmission records a worker's claim of completed work against a
	// task. The initial status is always pending.
	CreateSubmission(ctx context.Context, req dto.CreateSubmissionRequest, worker *domain.User) (*domain.Submission, error)

	// ListWorkerSubmissions retrieves a worker's own submissions.
	ListWorkerSubmissions(ctx context.Context, workerEmail string) ([]domain.Submission, error)

	// ListCreatorSubmissions retrieves submissions against a creator's tasks,
	// optionally filtered by status.
	ListCreatorSubmissions(ctx context.Context, creatorEmail string, status domain.SubmissionStatus) ([]domain.Submission, error)

	// ListAllSubmissions retrieves every submission (admin surface).
	ListAllSubmissions(ctx context.Context) ([]domain.Submission, error)

	// ApproveSubmission flips a pending submission to approved and credits the
	// worker its pay amount, exactly once. Only the task's creator may approve.
	ApproveSubmission(ctx context.Context, submissionID string, requesterEmail string) (*domain.Submission, error)

	// RejectSubmission flips a pending submission to rejected. Only the task's
	// creator may reject.
	RejectSubmission(ctx context.Context, submissionID string, requesterEmail string) (*domain.Submission, error)
}
