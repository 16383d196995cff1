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

// withdrawalHandler handles HTTP requests related to withdrawals.
type withdrawalHandler struct {
	withdrawalService portssvc.WithdrawalSvcFacade
}

func newWithdrawalHandler(ws portssvc.WithdrawalSvcFacade) *withdrawalHandler {
	return &withdrawalHandler{withdrawalService: ws}
}

// registerWithdrawalRoutes registers all withdrawal-related routes.
func registerWithdrawalRoutes(rg *gin.RouterGroup, withdrawalService portssvc.WithdrawalSvcFacade, userService portssvc.UserReaderSvc) {
	h := newWithdrawalHandler(withdrawalService)
	workerOnly := middleware.RequireRole(userService, domain.RoleWorker)
	adminOnly := middleware.RequireRole(userService, domain.RoleAdmin)

	rg.POST("/withdraw", workerOnly, h.createWithdrawal)
	rg.GET("/withdraw", workerOnly, h.listOwnWithdrawals)
	rg.GET("/withdrawals", adminOnly, h.listAllWithdrawals)
	rg.DELETE("/withdrawApprove/:id", adminOnly, h.approveWithdrawal)
}

// createWithdrawal godoc
// @Summary Request a withdrawal
// @Description Records a worker's cash-out request. The requested amount must
// @Description not exceed the worker's current balance.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param withdrawal body dto.CreateWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.WithdrawalResponse
// @Failure 400 {object} ErrorResponse "Invalid input or amount exceeds balance"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to create withdrawal"
// @Security BearerAuth
// @Router /withdraw [post]
func (h *withdrawalHandler) createWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	worker, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	withdrawal, err := h.withdrawalService.CreateWithdrawal(c.Request.Context(), req, worker)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Withdrawal amount exceeds balance"})
			return
		}
		logger.Error("Failed to create withdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create withdrawal"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWithdrawalResponse(withdrawal))
}

// listOwnWithdrawals godoc
// @Summary List own withdrawal requests
// @Description Retrieves the authenticated worker's outstanding requests.
// @Tags withdrawals
// @Produce json
// @Success 200 {array} dto.WithdrawalResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list withdrawals"
// @Security BearerAuth
// @Router /withdraw [get]
func (h *withdrawalHandler) listOwnWithdrawals(c *gin.Context) {
	worker, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ws, err := h.withdrawalService.ListWorkerWithdrawals(c.Request.Context(), worker.Email)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list worker withdrawals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list withdrawals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalResponses(ws))
}

// listAllWithdrawals godoc
// @Summary List every withdrawal request
// @Description Retrieves all outstanding withdrawal requests (admin only).
// @Tags withdrawals
// @Produce json
// @Success 200 {array} dto.WithdrawalResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list withdrawals"
// @Security BearerAuth
// @Router /withdrawals [get]
func (h *withdrawalHandler) listAllWithdrawals(c *gin.Context) {
	ws, err := h.withdrawalService.ListAllWithdrawals(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list withdrawals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list withdrawals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalResponses(ws))
}

// approveWithdrawal godoc
// @Summary Approve a withdrawal
// @Description Debits the worker and removes the request, exactly once.
// @Description Approving the same request again returns 404 (admin only).
// @Tags withdrawals
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} dto.WithdrawalResponse
// @Failure 400 {object} ErrorResponse "Worker balance cannot cover the amount"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Withdrawal not found"
// @Failure 500 {object} ErrorResponse "Failed to approve withdrawal"
// @Security BearerAuth
// @Router /withdrawApprove/{id} [delete]
func (h *withdrawalHandler) approveWithdrawal(c *gin.Context) {
	withdrawalID := c.Param("id")

	withdrawal, err := h.withdrawalService.ApproveWithdrawal(c.Request.Context(), withdrawalID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Withdrawal not found"})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Worker balance cannot cover the amount"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to approve withdrawal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to approve withdrawal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalResponse(withdrawal))
}
