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

// taskServiceImpl implements the TaskSvcFacade interface
type taskServiceImpl struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
}

// NewTaskService creates a new task service backed by the given repository.
func NewTaskService(taskRepo portsrepo.TaskRepositoryFacade) portssvc.TaskSvcFacade {
	return &taskServiceImpl{taskRepo: taskRepo}
}

var _ portssvc.TaskSvcFacade = (*taskServiceImpl)(nil)

func (s *taskServiceImpl) CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorEmail string) (*domain.Task, error) {
	now := time.Now()
	task := domain.Task{
		TaskID:         uuid.NewString(),
		CreatorEmail:   creatorEmail,
		Title:          req.Title,
		Details:        req.Details,
		Quantity:       req.Quantity,
		PayAmount:      req.PayAmount,
		SubmitInfo:     req.SubmitInfo,
		ImageURL:       req.ImageURL,
		CompletionDate: req.CompletionDate,
		Status:         domain.TaskStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.taskRepo.SaveTaskWithDebit(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to create task",
			slog.String("creator_email", creatorEmail),
			slog.Int64("reserved_coins", task.ReservedCoins()))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.LogInfo(ctx, "Task created",
		slog.String("task_id", task.TaskID),
		slog.String("creator_email", creatorEmail),
		slog.Int64("reserved_coins", task.ReservedCoins()))
	return &task, nil
}

func (s *taskServiceImpl) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, creatorEmail string) ([]domain.Task, error) {
	if creatorEmail != "" {
		tasks, err := s.taskRepo.FindTasksByCreator(ctx, creatorEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks by creator: %w", err)
		}
		return tasks, nil
	}
	tasks, err := s.taskRepo.FindTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest, requesterEmail string) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task for update: %w", err)
	}
	if task.CreatorEmail != requesterEmail {
		s.LogDebug(ctx, "Task edit denied for non-owner",
			slog.String("task_id", taskID),
			slog.String("requester_email", requesterEmail))
		return nil, fmt.Errorf("only the task creator may edit it: %w", apperrors.ErrForbidden)
	}

	task.Title = req.Title
	task.Details = req.Details
	task.SubmitInfo = req.SubmitInfo
	task.LastUpdatedAt = time.Now()

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task", slog.String("task_id", taskID))
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID string, requesterEmail string) error {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to find task for deletion: %w", err)
	}
	if task.CreatorEmail != requesterEmail {
		return fmt.Errorf("only the task creator may delete it: %w", apperrors.ErrForbidden)
	}

	if err := s.taskRepo.DeleteTaskWithRefund(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to delete task", slog.String("task_id", taskID))
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.LogInfo(ctx, "Task deleted with refund",
		slog.String("task_id", taskID),
		slog.String("creator_email", task.CreatorEmail),
		slog.Int64("refunded_coins", task.ReservedCoins()))
	return nil
}
