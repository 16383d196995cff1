package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/earnbuddy/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taskHandler handles HTTP requests related to tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

// RegisterTaskRoutes registers all task-related routes. Reads are open to any
// registered user; writes require the taskCreator role and ownership is
// enforced in the service.
func RegisterTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade, userService portssvc.UserReaderSvc) {
	h := newTaskHandler(taskService)
	anyRegistered := middleware.RequireRole(userService, domain.RoleAdmin, domain.RoleTaskCreator, domain.RoleWorker)
	creatorOnly := middleware.RequireRole(userService, domain.RoleTaskCreator)

	rg.GET("/tasks", anyRegistered, h.listTasks)
	rg.GET("/tasks/:id", anyRegistered, h.getTask)
	rg.POST("/tasks", creatorOnly, h.createTask)
	rg.PATCH("/tasks/:id", creatorOnly, h.updateTask)
	rg.DELETE("/tasks/:id", creatorOnly, h.deleteTask)
}

// createTask godoc
// @Summary Create a task
// @Description Posts a new task funded by the caller. The reservation
// @Description (quantity x payAmount) is debited from the caller's balance.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid input or insufficient coins"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to create task"
// @Security BearerAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creator, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req, creator.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Insufficient coins to fund this task"})
			return
		}
		logger.Error("Failed to create task", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// listTasks godoc
// @Summary List tasks
// @Description Retrieves tasks, optionally filtered by creator email. A
// @Description creator may only list their own tasks; admins may list anyone's.
// @Tags tasks
// @Produce json
// @Param creatorEmail query string false "Creator email filter"
// @Success 200 {array} dto.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list tasks"
// @Security BearerAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	var params dto.ListTasksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid creatorEmail filter"})
		return
	}

	caller, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// A creator filtering by email may only see their own listings.
	if params.CreatorEmail != "" && caller.Role != domain.RoleAdmin && params.CreatorEmail != caller.Email {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), params.CreatorEmail)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list tasks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list tasks"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

// getTask godoc
// @Summary Get a task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve task"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *taskHandler) getTask(c *gin.Context) {
	taskID := c.Param("id")

	task, err := h.taskService.GetTaskByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to retrieve task", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve task"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// updateTask godoc
// @Summary Update a task
// @Description Edits a task's title, details and submission instructions.
// @Description Only the task's creator may edit it.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Editable fields"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the task's creator"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Failed to update task"
// @Security BearerAuth
// @Router /tasks/{id} [patch]
func (h *taskHandler) updateTask(c *gin.Context) {
	taskID := c.Param("id")

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	caller, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, req, caller.Email)
	if err != nil {
		h.writeTaskError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// deleteTask godoc
// @Summary Delete a task
// @Description Removes a task and refunds the creator's reserved coins.
// @Description Only the task's creator may delete it.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the task's creator"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Failed to delete task"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	taskID := c.Param("id")

	caller, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, caller.Email); err != nil {
		h.writeTaskError(c, err, "Failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *taskHandler) writeTaskError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
