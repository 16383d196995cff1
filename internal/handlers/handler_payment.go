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
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// paymentHandler handles HTTP requests related to coin purchases.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// RegisterPaymentRoutes registers all payment-related routes. Coin purchases
// are a task-creator concern.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, userService portssvc.UserReaderSvc) {
	h := newPaymentHandler(paymentService)
	creatorOnly := middleware.RequireRole(userService, domain.RoleTaskCreator)

	// Intent creation hits the external provider, so it gets its own IP limit.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	intentLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(intentLimiter)

	rg.POST("/create-payment-intent", limitMiddleware, creatorOnly, h.createPaymentIntent)
	rg.POST("/payments", creatorOnly, h.recordPayment)
	rg.GET("/payments/:email", creatorOnly, h.listPayments)
}

// createPaymentIntent godoc
// @Summary Create a payment intent
// @Description Asks the external payment provider for a client secret the
// @Description buyer can use to confirm the purchase. No local state changes.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentIntentRequest true "Purchase price in dollars"
// @Success 200 {object} dto.PaymentIntentResponse
// @Failure 400 {object} ErrorResponse "Invalid price"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Payment provider error"
// @Security BearerAuth
// @Router /create-payment-intent [post]
func (h *paymentHandler) createPaymentIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	clientSecret, err := h.paymentService.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Purchase price must be positive"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create payment intent", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

// recordPayment godoc
// @Summary Record a confirmed payment
// @Description Credits the caller's coin balance and stores the payment
// @Description record after the external payment was confirmed client-side.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Confirmed payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	buyer, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), req, buyer.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid payment details"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to record payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List a buyer's payments
// @Description Retrieves payments recorded for an email. Callers may only
// @Description list their own.
// @Tags payments
// @Produce json
// @Param email path string true "Buyer email"
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Security BearerAuth
// @Router /payments/{email} [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	email := c.Param("email")

	caller, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if caller.Email != email {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), email)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}
