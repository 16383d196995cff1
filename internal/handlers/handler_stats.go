package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statsHandler handles the read-only dashboard rollup endpoints.
type statsHandler struct {
	statsService portssvc.StatsSvcFacade
}

func newStatsHandler(ss portssvc.StatsSvcFacade) *statsHandler {
	return &statsHandler{statsService: ss}
}

// registerStatsRoutes registers the dashboard rollup routes. Each audience
// can only read its own rollup.
func registerStatsRoutes(rg *gin.RouterGroup, statsService portssvc.StatsSvcFacade, userService portssvc.UserReaderSvc) {
	h := newStatsHandler(statsService)
	workerOnly := middleware.RequireRole(userService, domain.RoleWorker)
	creatorOnly := middleware.RequireRole(userService, domain.RoleTaskCreator)
	adminOnly := middleware.RequireRole(userService, domain.RoleAdmin)

	rg.GET("/workerStats/:email", workerOnly, h.getWorkerStats)
	rg.GET("/creatorStats/:email", creatorOnly, h.getCreatorStats)
	rg.GET("/adminStats", adminOnly, h.getAdminStats)
}

// requireOwnEmail aborts unless the path email matches the authenticated caller.
func requireOwnEmail(c *gin.Context) (string, bool) {
	email := c.Param("email")
	caller, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	if caller.Email != email {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return "", false
	}
	return email, true
}

// getWorkerStats godoc
// @Summary Worker dashboard rollup
// @Description Returns a worker's balance, submission count and approved
// @Description earnings sum. Workers may only read their own.
// @Tags stats
// @Produce json
// @Param email path string true "Worker email"
// @Success 200 {object} domain.WorkerStats
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Worker not found"
// @Failure 500 {object} ErrorResponse "Failed to aggregate stats"
// @Security BearerAuth
// @Router /workerStats/{email} [get]
func (h *statsHandler) getWorkerStats(c *gin.Context) {
	email, ok := requireOwnEmail(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetWorkerStats(c.Request.Context(), email)
	if err != nil {
		h.writeStatsError(c, err, "Worker not found", "Failed to aggregate worker stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getCreatorStats godoc
// @Summary Creator dashboard rollup
// @Description Returns a creator's balance, pending task slots and total
// @Description payment spend. Creators may only read their own.
// @Tags stats
// @Produce json
// @Param email path string true "Creator email"
// @Success 200 {object} domain.CreatorStats
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Creator not found"
// @Failure 500 {object} ErrorResponse "Failed to aggregate stats"
// @Security BearerAuth
// @Router /creatorStats/{email} [get]
func (h *statsHandler) getCreatorStats(c *gin.Context) {
	email, ok := requireOwnEmail(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetCreatorStats(c.Request.Context(), email)
	if err != nil {
		h.writeStatsError(c, err, "Creator not found", "Failed to aggregate creator stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getAdminStats godoc
// @Summary Platform-wide rollup
// @Description Returns the platform's user, coin and payment totals (admin only).
// @Tags stats
// @Produce json
// @Success 200 {object} domain.AdminStats
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to aggregate stats"
// @Security BearerAuth
// @Router /adminStats [get]
func (h *statsHandler) getAdminStats(c *gin.Context) {
	stats, err := h.statsService.GetAdminStats(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to aggregate admin stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to aggregate stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *statsHandler) writeStatsError(c *gin.Context, err error, notFoundMsg, fallback string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMsg})
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error(fallback, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
}
