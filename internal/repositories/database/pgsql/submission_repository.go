package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	"github.com/earnbuddy/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSubmissionRepository struct {
	BaseRepository
}

func newPgxSubmissionRepository(db *pgxpool.Pool) portsrepo.SubmissionRepositoryFacade {
	return &PgxSubmissionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SubmissionRepositoryFacade = (*PgxSubmissionRepository)(nil)

func toModelSubmission(d domain.Submission) models.Submission {
	return models.Submission{
		SubmissionID: d.SubmissionID,
		TaskID:       d.TaskID,
		TaskTitle:    d.TaskTitle,
		WorkerEmail:  d.WorkerEmail,
		WorkerName:   d.WorkerName,
		CreatorEmail: d.CreatorEmail,
		PayAmount:    d.PayAmount,
		Details:      d.Details,
		Status:       string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainSubmission(m models.Submission) domain.Submission {
	return domain.Submission{
		SubmissionID: m.SubmissionID,
		TaskID:       m.TaskID,
		TaskTitle:    m.TaskTitle,
		WorkerEmail:  m.WorkerEmail,
		WorkerName:   m.WorkerName,
		CreatorEmail: m.CreatorEmail,
		PayAmount:    m.PayAmount,
		Details:      m.Details,
		Status:       domain.SubmissionStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const submissionColumns = `submission_id, task_id, task_title, worker_email, worker_name, creator_email, pay_amount, details, status, created_at, last_updated_at`

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var m models.Submission
	err := row.Scan(
		&m.SubmissionID,
		&m.TaskID,
		&m.TaskTitle,
		&m.WorkerEmail,
		&m.WorkerName,
		&m.CreatorEmail,
		&m.PayAmount,
		&m.Details,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxSubmissionRepository) SaveSubmission(ctx context.Context, submission domain.Submission) error {
	m := toModelSubmission(submission)
	query := `
        INSERT INTO submissions (submission_id, task_id, task_title, worker_email, worker_name, creator_email, pay_amount, details, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.SubmissionID,
		m.TaskID,
		m.TaskTitle,
		m.WorkerEmail,
		m.WorkerName,
		m.CreatorEmail,
		m.PayAmount,
		m.Details,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

func (r *PgxSubmissionRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE submission_id = $1;`
	m, err := scanSubmission(r.Pool.QueryRow(ctx, query, submissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find submission by ID %s: %w", submissionID, err)
	}
	s := toDomainSubmission(*m)
	return &s, nil
}

func (r *PgxSubmissionRepository) FindSubmissionsByWorker(ctx context.Context, workerEmail string) ([]domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE worker_email = $1 ORDER BY created_at DESC;`
	return r.querySubmissions(ctx, query, workerEmail)
}

func (r *PgxSubmissionRepository) FindSubmissionsByCreator(ctx context.Context, creatorEmail string, status domain.SubmissionStatus) ([]domain.Submission, error) {
	if status == "" {
		query := `SELECT ` + submissionColumns + ` FROM submissions WHERE creator_email = $1 ORDER BY created_at DESC;`
		return r.querySubmissions(ctx, query, creatorEmail)
	}
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE creator_email = $1 AND status = $2 ORDER BY created_at DESC;`
	return r.querySubmissions(ctx, query, creatorEmail, string(status))
}

func (r *PgxSubmissionRepository) FindSubmissions(ctx context.Context) ([]domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions ORDER BY created_at DESC;`
	return r.querySubmissions(ctx, query)
}

func (r *PgxSubmissionRepository) querySubmissions(ctx context.Context, query string, args ...any) ([]domain.Submission, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	subs := []domain.Submission{}
	for rows.Next() {
		m, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		subs = append(subs, toDomainSubmission(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", rows.Err())
	}
	return subs, nil
}

// ApproveSubmission flips a pending submission to approved and credits the
// worker its pay amount within a single DB transaction. The status guard sits
// in the UPDATE's WHERE clause so a submission can be approved at most once.
func (r *PgxSubmissionRepository) ApproveSubmission(ctx context.Context, submissionID string) (*domain.Submission, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m, err := r.transitionInTx(ctx, tx, submissionID, domain.SubmissionStatusApproved)
	if err != nil {
		return nil, err
	}

	if err := adjustUserCoins(ctx, tx, m.WorkerEmail, m.PayAmount); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	s := toDomainSubmission(*m)
	return &s, nil
}

// RejectSubmission flips a pending submission to rejected. No balance effect.
func (r *PgxSubmissionRepository) RejectSubmission(ctx context.Context, submissionID string) (*domain.Submission, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m, err := r.transitionInTx(ctx, tx, submissionID, domain.SubmissionStatusRejected)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	s := toDomainSubmission(*m)
	return &s, nil
}

// transitionInTx performs the pending -> target status update. It returns
// apperrors.ErrNotFound if the submission does not exist and
// apperrors.ErrInvalidTransition if its status is already terminal.
func (r *PgxSubmissionRepository) transitionInTx(ctx context.Context, tx pgx.Tx, submissionID string, target domain.SubmissionStatus) (*models.Submission, error) {
	query := `
        UPDATE submissions
        SET status = $1, last_updated_at = now()
        WHERE submission_id = $2 AND status = $3
        RETURNING ` + submissionColumns + `;
    `
	m, err := scanSubmission(tx.QueryRow(ctx, query, string(target), submissionID, string(domain.SubmissionStatusPending)))
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to transition submission %s: %w", submissionID, err)
	}

	// Nothing updated: either the record is gone or it already left pending
	var exists bool
	if qErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM submissions WHERE submission_id = $1)`, submissionID).Scan(&exists); qErr != nil {
		return nil, fmt.Errorf("failed to check submission existence: %w", qErr)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return nil, apperrors.ErrInvalidTransition
}
