package handlers

import (
	"context"
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

// submissionHandler handles HTTP requests related to submissions.
type submissionHandler struct {
	submissionService portssvc.SubmissionSvcFacade
}

func newSubmissionHandler(ss portssvc.SubmissionSvcFacade) *submissionHandler {
	return &submissionHandler{submissionService: ss}
}

// registerSubmissionRoutes registers all submission-related routes.
func registerSubmissionRoutes(rg *gin.RouterGroup, submissionService portssvc.SubmissionSvcFacade, userService portssvc.UserReaderSvc) {
	h := newSubmissionHandler(submissionService)
	workerOnly := middleware.RequireRole(userService, domain.RoleWorker)
	creatorOnly := middleware.RequireRole(userService, domain.RoleTaskCreator)
	adminOnly := middleware.RequireRole(userService, domain.RoleAdmin)

	rg.POST("/submission", workerOnly, h.createSubmission)
	rg.GET("/submission", workerOnly, h.listOwnSubmissions)
	rg.GET("/submissionAll/:email", creatorOnly, h.listCreatorSubmissions)
	rg.GET("/submissions", adminOnly, h.listAllSubmissions)
	rg.PATCH("/subApprove/:id", creatorOnly, h.approveSubmission)
	rg.PATCH("/subReject/:id", creatorOnly, h.rejectSubmission)
}

// createSubmission godoc
// @Summary Submit completed work
// @Description Records a worker's claim of completed work against a task.
// @Description The submission starts in the pending state.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body dto.CreateSubmissionRequest true "Submission details"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Failed to create submission"
// @Security BearerAuth
// @Router /submission [post]
func (h *submissionHandler) createSubmission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	worker, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	submission, err := h.submissionService.CreateSubmission(c.Request.Context(), req, worker)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
			return
		}
		logger.Error("Failed to create submission", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubmissionResponse(submission))
}

// listOwnSubmissions godoc
// @Summary List own submissions
// @Description Retrieves the authenticated worker's submissions.
// @Tags submissions
// @Produce json
// @Success 200 {array} dto.SubmissionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list submissions"
// @Security BearerAuth
// @Router /submission [get]
func (h *submissionHandler) listOwnSubmissions(c *gin.Context) {
	worker, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	subs, err := h.submissionService.ListWorkerSubmissions(c.Request.Context(), worker.Email)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list worker submissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponses(subs))
}

// listCreatorSubmissions godoc
// @Summary List submissions against a creator's tasks
// @Description Retrieves submissions made against the creator's tasks,
// @Description optionally filtered by status. Creators may only list their own.
// @Tags submissions
// @Produce json
// @Param email path string true "Creator email"
// @Param status query string false "Status filter" Enums(pending, approved, rejected)
// @Success 200 {array} dto.SubmissionResponse
// @Failure 400 {object} ErrorResponse "Invalid status filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list submissions"
// @Security BearerAuth
// @Router /submissionAll/{email} [get]
func (h *submissionHandler) listCreatorSubmissions(c *gin.Context) {
	creatorEmail := c.Param("email")

	var params dto.ListCreatorSubmissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status filter"})
		return
	}

	caller, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if caller.Email != creatorEmail {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	subs, err := h.submissionService.ListCreatorSubmissions(c.Request.Context(), creatorEmail, domain.SubmissionStatus(params.Status))
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list creator submissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponses(subs))
}

// listAllSubmissions godoc
// @Summary List every submission
// @Description Retrieves all submissions across the platform (admin only).
// @Tags submissions
// @Produce json
// @Success 200 {array} dto.SubmissionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list submissions"
// @Security BearerAuth
// @Router /submissions [get]
func (h *submissionHandler) listAllSubmissions(c *gin.Context) {
	subs, err := h.submissionService.ListAllSubmissions(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list submissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponses(subs))
}

// approveSubmission godoc
// @Summary Approve a submission
// @Description Flips a pending submission to approved and credits the worker
// @Description its pay amount, exactly once. Only the task's creator may approve.
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the task's creator"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Failure 409 {object} ErrorResponse "Submission already reviewed"
// @Failure 500 {object} ErrorResponse "Failed to approve submission"
// @Security BearerAuth
// @Router /subApprove/{id} [patch]
func (h *submissionHandler) approveSubmission(c *gin.Context) {
	h.reviewSubmission(c, h.submissionService.ApproveSubmission, "Failed to approve submission")
}

// rejectSubmission godoc
// @Summary Reject a submission
// @Description Flips a pending submission to rejected. Only the task's
// @Description creator may reject.
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the task's creator"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Failure 409 {object} ErrorResponse "Submission already reviewed"
// @Failure 500 {object} ErrorResponse "Failed to reject submission"
// @Security BearerAuth
// @Router /subReject/{id} [patch]
func (h *submissionHandler) rejectSubmission(c *gin.Context) {
	h.reviewSubmission(c, h.submissionService.RejectSubmission, "Failed to reject submission")
}

func (h *submissionHandler) reviewSubmission(c *gin.Context, review func(ctx context.Context, submissionID, requesterEmail string) (*domain.Submission, error), fallback string) {
	submissionID := c.Param("id")

	caller, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	submission, err := review(c.Request.Context(), submissionID, caller.Email)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Submission not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Submission already reviewed"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error(fallback, slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(submission))
}
