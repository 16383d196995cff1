package services

import (
	"context"

	"github.com/earnbuddy/backend/internal/core/domain"
	"github.com/earnbuddy/backend/internal/dto"
)

// TaskSvcFacade defines the task ledger operations.
type TaskSvcFacade interface {
	// CreateTask posts a new task funded by creatorEmail. The reservation
	// (quantity x payAmount) is debited from the creator atomically with the
	// insert; apperrors.ErrInsufficientFunds if the balance cannot cover it.
	CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorEmail string) (*domain.Task, error)

	// GetTaskByID retrieves a single task.
	GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// ListTasks retrieves tasks, optionally filtered by creator email.
	ListTasks(ctx context.Context, creatorEmail string) ([]domain.Task, error)

	// UpdateTask edits a task's title/details/submitInfo. Only the task's
	// creator may edit it; apperrors.ErrForbidden otherwise.
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, requesterEmail string) (*domain.Task, error)

	// DeleteTask removes a task and refunds the creator's reservation
	// atomically. Only the task's creator may delete it.
	DeleteTask(ctx context.Context, taskID string, requesterEmail string) error
}
