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

type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(db *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

func toModelTask(d domain.Task) models.Task {
	return models.Task{
		TaskID:         d.TaskID,
		CreatorEmail:   d.CreatorEmail,
		Title:          d.Title,
		Details:        d.Details,
		Quantity:       d.Quantity,
		PayAmount:      d.PayAmount,
		SubmitInfo:     d.SubmitInfo,
		ImageURL:       d.ImageURL,
		CompletionDate: d.CompletionDate,
		Status:         string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainTask(m models.Task) domain.Task {
	return domain.Task{
		TaskID:         m.TaskID,
		CreatorEmail:   m.CreatorEmail,
		Title:          m.Title,
		Details:        m.Details,
		Quantity:       m.Quantity,
		PayAmount:      m.PayAmount,
		SubmitInfo:     m.SubmitInfo,
		ImageURL:       m.ImageURL,
		CompletionDate: m.CompletionDate,
		Status:         domain.TaskStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const taskColumns = `task_id, creator_email, title, details, quantity, pay_amount, submit_info, image_url, completion_date, status, created_at, last_updated_at`

func scanTask(row pgx.Row) (*models.Task, error) {
	var m models.Task
	err := row.Scan(
		&m.TaskID,
		&m.CreatorEmail,
		&m.Title,
		&m.Details,
		&m.Quantity,
		&m.PayAmount,
		&m.SubmitInfo,
		&m.ImageURL,
		&m.CompletionDate,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTaskWithDebit debits the creator's reserved coins and inserts the task
// within a single DB transaction, so neither takes effect without the other.
func (r *PgxTaskRepository) SaveTaskWithDebit(ctx context.Context, task domain.Task) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := adjustUserCoins(ctx, tx, task.CreatorEmail, -task.ReservedCoins()); err != nil {
		return err
	}

	m := toModelTask(task)
	query := `
        INSERT INTO tasks (task_id, creator_email, title, details, quantity, pay_amount, submit_info, image_url, completion_date, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err = tx.Exec(ctx, query,
		m.TaskID,
		m.CreatorEmail,
		m.Title,
		m.Details,
		m.Quantity,
		m.PayAmount,
		m.SubmitInfo,
		m.ImageURL,
		m.CompletionDate,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1;`
	m, err := scanTask(r.Pool.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task by ID %s: %w", taskID, err)
	}
	t := toDomainTask(*m)
	return &t, nil
}

func (r *PgxTaskRepository) FindTasks(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC;`
	return r.queryTasks(ctx, query)
}

func (r *PgxTaskRepository) FindTasksByCreator(ctx context.Context, creatorEmail string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE creator_email = $1 ORDER BY created_at DESC;`
	return r.queryTasks(ctx, query, creatorEmail)
}

func (r *PgxTaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		m, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, toDomainTask(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", rows.Err())
	}
	return tasks, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
        UPDATE tasks
        SET title = $1, details = $2, submit_info = $3, last_updated_at = $4
        WHERE task_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		task.Title,
		task.Details,
		task.SubmitInfo,
		task.LastUpdatedAt,
		task.TaskID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update task query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTaskWithRefund credits the creator back the task's reserved coins and
// deletes the task within a single DB transaction.
func (r *PgxTaskRepository) DeleteTaskWithRefund(ctx context.Context, task domain.Task) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1;`, task.TaskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := adjustUserCoins(ctx, tx, task.CreatorEmail, task.ReservedCoins()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
