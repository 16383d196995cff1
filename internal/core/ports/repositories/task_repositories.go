package repositories

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
)

// TaskReader defines read operations for task data.
type TaskReader interface {
	// FindTaskByID retrieves a specific task.
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// FindTasks retrieves every task.
	FindTasks(ctx context.Context) ([]domain.Task, error)

	// FindTasksByCreator retrieves all tasks posted by the given creator email.
	FindTasksByCreator(ctx context.Context, creatorEmail string) ([]domain.Task, error)
}

// TaskWriter defines write operations for task data. The balance-affecting
// operations run the coin movement and the row change inside a single
// database transaction.
type TaskWriter interface {
	// SaveTaskWithDebit debits the creator by the task's reserved coins and
	// inserts the task as one unit. Returns apperrors.ErrInsufficientFunds if
	// the creator's balance cannot cover the reservation.
	SaveTaskWithDebit(ctx context.Context, task domain.Task) error

	// UpdateTask updates a task's editable fields (title, details, submitInfo).
	UpdateTask(ctx context.Context, task domain.Task) error

	// DeleteTaskWithRefund credits the creator back the task's reserved coins
	// and deletes the task as one unit.
	DeleteTaskWithRefund(ctx context.Context, task domain.Task) error
}

// TaskRepositoryFacade combines all task-related repository interfaces.
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
