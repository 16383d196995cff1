package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/google/uuid"
)

// submissionServiceImpl implements the SubmissionSvcFacade interface
type submissionServiceImpl struct {
	BaseService
	submissionRepo portsrepo.SubmissionRepositoryFacade
	taskRepo       portsrepo.TaskReader
}

// NewSubmissionService creates a new submission service. The task reader is
// needed to denormalize task fields into new submissions and to verify
// creator ownership on approve/reject.
func NewSubmissionService(submissionRepo portsrepo.SubmissionRepositoryFacade, taskRepo portsrepo.TaskReader) portssvc.SubmissionSvcFacade {
	return &submissionServiceImpl{
		submissionRepo: submissionRepo,
		taskRepo:       taskRepo,
	}
}

var _ portssvc.SubmissionSvcFacade = (*submissionServiceImpl)(nil)

func (s *submissionServiceImpl) CreateSubmission(ctx context.Context, req dto.CreateSubmissionRequest, worker *domain.User) (*domain.Submission, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, req.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task for submission: %w", err)
	}

	now := time.Now()
	// Task title, creator and pay amount are copied so the submission record
	// survives task deletion.
	submission := domain.Submission{
		SubmissionID: uuid.NewString(),
		TaskID:       task.TaskID,
		TaskTitle:    task.Title,
		WorkerEmail:  worker.Email,
		WorkerName:   worker.Name,
		CreatorEmail: task.CreatorEmail,
		PayAmount:    task.PayAmount,
		Details:      req.Details,
		Status:       domain.SubmissionStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.submissionRepo.SaveSubmission(ctx, submission); err != nil {
		s.LogError(ctx, err, "Failed to create submission",
			slog.String("task_id", req.TaskID),
			slog.String("worker_email", worker.Email))
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	s.LogInfo(ctx, "Submission created",
		slog.String("submission_id", submission.SubmissionID),
		slog.String("task_id", task.TaskID),
		slog.String("worker_email", worker.Email))
	return &submission, nil
}

func (s *submissionServiceImpl) ListWorkerSubmissions(ctx context.Context, workerEmail string) ([]domain.Submission, error) {
	subs, err := s.submissionRepo.FindSubmissionsByWorker(ctx, workerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker submissions: %w", err)
	}
	return subs, nil
}

func (s *submissionServiceImpl) ListCreatorSubmissions(ctx context.Context, creatorEmail string, status domain.SubmissionStatus) ([]domain.Submission, error) {
	subs, err := s.submissionRepo.FindSubmissionsByCreator(ctx, creatorEmail, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list creator submissions: %w", err)
	}
	return subs, nil
}

func (s *submissionServiceImpl) ListAllSubmissions(ctx context.Context) ([]domain.Submission, error) {
	subs, err := s.submissionRepo.FindSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

// authorizeCreator loads a submission and checks the requester owns the task
// it was made against.
func (s *submissionServiceImpl) authorizeCreator(ctx context.Context, submissionID, requesterEmail string) error {
	submission, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return fmt.Errorf("failed to find submission: %w", err)
	}
	if submission.CreatorEmail != requesterEmail {
		s.LogDebug(ctx, "Submission review denied for non-owner",
			slog.String("submission_id", submissionID),
			slog.String("requester_email", requesterEmail))
		return fmt.Errorf("only the task creator may review this submission: %w", apperrors.ErrForbidden)
	}
	return nil
}

func (s *submissionServiceImpl) ApproveSubmission(ctx context.Context, submissionID string, requesterEmail string) (*domain.Submission, error) {
	if err := s.authorizeCreator(ctx, submissionID, requesterEmail); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.ApproveSubmission(ctx, submissionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to approve submission", slog.String("submission_id", submissionID))
		return nil, fmt.Errorf("failed to approve submission: %w", err)
	}

	s.LogInfo(ctx, "Submission approved",
		slog.String("submission_id", submissionID),
		slog.String("worker_email", submission.WorkerEmail),
		slog.Int64("pay_amount", submission.PayAmount))
	return submission, nil
}

func (s *submissionServiceImpl) RejectSubmission(ctx context.Context, submissionID string, requesterEmail string) (*domain.Submission, error) {
	if err := s.authorizeCreator(ctx, submissionID, requesterEmail); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.RejectSubmission(ctx, submissionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reject submission", slog.String("submission_id", submissionID))
		return nil, fmt.Errorf("failed to reject submission: %w", err)
	}

	s.LogInfo(ctx, "Submission rejected", slog.String("submission_id", submissionID))
	return submission, nil
}
