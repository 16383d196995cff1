package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/earnbuddy/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// topEarnersLimit caps the public leaderboard size.
const topEarnersLimit = 6

// publicHandler serves the unauthenticated landing-page reads.
type publicHandler struct {
	reviewService portssvc.ReviewSvcFacade
	userService   portssvc.UserReaderSvc
}

func newPublicHandler(rs portssvc.ReviewSvcFacade, us portssvc.UserReaderSvc) *publicHandler {
	return &publicHandler{reviewService: rs, userService: us}
}

// registerPublicReadRoutes registers the unauthenticated landing-page routes.
func registerPublicReadRoutes(r *gin.Engine, reviewService portssvc.ReviewSvcFacade, userService portssvc.UserReaderSvc) {
	h := newPublicHandler(reviewService, userService)

	r.GET("/reviews", h.listReviews)
	r.GET("/topEarners", h.listTopEarners)
}

// listReviews godoc
// @Summary List public reviews
// @Description Retrieves every public testimonial.
// @Tags public
// @Produce json
// @Success 200 {array} dto.ReviewResponse
// @Failure 500 {object} ErrorResponse "Failed to list reviews"
// @Router /reviews [get]
func (h *publicHandler) listReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list reviews", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list reviews"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}

// listTopEarners godoc
// @Summary List top earners
// @Description Retrieves the six highest coin balances, descending.
// @Tags public
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} ErrorResponse "Failed to list top earners"
// @Router /topEarners [get]
func (h *publicHandler) listTopEarners(c *gin.Context) {
	users, err := h.userService.ListTopEarners(c.Request.Context(), topEarnersLimit)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list top earners", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list top earners"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}
