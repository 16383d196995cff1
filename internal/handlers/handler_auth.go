package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/earnbuddy/backend/internal/apperrors"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/dto"
	"github.com/earnbuddy/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// authHandler handles token issuance and the Google sign-in exchange.
type authHandler struct {
	tokenService  portssvc.TokenSvcFacade
	googleService portssvc.GoogleOAuthSvcFacade
	userService   portssvc.UserSvcFacade
}

func newAuthHandler(tokens portssvc.TokenSvcFacade, google portssvc.GoogleOAuthSvcFacade, users portssvc.UserSvcFacade) *authHandler {
	return &authHandler{
		tokenService:  tokens,
		googleService: google,
		userService:   users,
	}
}

// registerAuthRoutes sets up the public authentication routes. Both are rate
// limited by client IP since they are unauthenticated.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Token, services.GoogleOAuth, services.User)

	// 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	r.POST("/jwt", limitMiddleware, h.issueToken)
	r.POST("/auth/google/exchange-code", limitMiddleware, h.exchangeGoogleCode)
}

// issueToken godoc
// @Summary Issue a bearer token
// @Description Issues a signed token for a registered email address.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.IssueTokenRequest true "Email to issue a token for"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unknown email"
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /jwt [post]
func (h *authHandler) issueToken(c *gin.Context) {
	var req dto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, _, err := h.tokenService.IssueToken(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unknown email"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// exchangeGoogleCode godoc
// @Summary Google sign-in
// @Description Exchanges a Google OAuth authorization code, upserts the user
// @Description record on first sign-in, and returns an application token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Code exchange or token validation failed"
// @Failure 500 {object} ErrorResponse "Failed to register user or issue token"
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeGoogleCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	oauthToken, err := h.googleService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Code exchange failed"})
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Warn("Google token response missing id_token")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing ID token"})
		return
	}

	payload, err := h.googleService.ValidateGoogleIDToken(c.Request.Context(), rawIDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "ID token missing email"})
		return
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	// First sign-in creates the record; a returning user's record is
	// returned untouched.
	_, inserted, err := h.userService.RegisterUser(c.Request.Context(), dto.RegisterUserRequest{
		Name:     name,
		Email:    email,
		PhotoURL: picture,
	})
	if err != nil {
		logger.Error("Failed to upsert user after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}
	if inserted {
		logger.Info("User created via Google sign-in", slog.String("email", email))
	}

	token, _, err := h.tokenService.IssueToken(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to issue token after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
