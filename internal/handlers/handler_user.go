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

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerPublicUserRoutes registers the unauthenticated sign-in upsert.
func registerPublicUserRoutes(r *gin.Engine, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)
	r.POST("/users", h.registerUser)
}

// registerUserRoutes registers the authenticated user routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)
	adminOnly := middleware.RequireRole(userService, domain.RoleAdmin)

	rg.GET("/users", adminOnly, h.listUsers)
	rg.GET("/users/:email", h.getUserByEmail)
	rg.PATCH("/users/:id", adminOnly, h.updateUser)
	rg.DELETE("/users/:id", adminOnly, h.deleteUser)
}

// registerUser godoc
// @Summary Register (upsert) a user
// @Description Creates the user record on first sign-in. An already
// @Description registered email returns the stored record untouched.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "User details"
// @Success 200 {object} dto.RegisterUserResponse "Existing record returned"
// @Success 201 {object} dto.RegisterUserResponse "New record created"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to register user"
// @Router /users [post]
func (h *userHandler) registerUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, inserted, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	c.JSON(status, dto.RegisterUserResponse{User: dto.ToUserResponse(user), Inserted: inserted})
}

// listUsers godoc
// @Summary List users
// @Description Retrieves all users, optionally filtered by role (admin only).
// @Tags users
// @Produce json
// @Param role query string false "Role filter" Enums(admin, taskCreator, worker, unset)
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to list users"
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid role filter"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), domain.Role(params.Role))
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// getUserByEmail godoc
// @Summary Get a user by email
// @Description Retrieves a user record. Callers may look up themselves; only
// @Description admins may look up others.
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve user"
// @Security BearerAuth
// @Router /users/{email} [get]
func (h *userHandler) getUserByEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetEmail := c.Param("email")

	callerEmail, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if callerEmail != targetEmail {
		caller, err := h.userService.GetUserByEmail(c.Request.Context(), callerEmail)
		if err != nil || caller.Role != domain.RoleAdmin {
			logger.Warn("Non-admin attempted to read another user",
				slog.String("caller_email", callerEmail),
				slog.String("target_email", targetEmail))
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
			return
		}
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), targetEmail)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to retrieve user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a user's role or coins
// @Description Sets a user's role or overwrites their coin balance (admin only).
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param role query string false "New role" Enums(admin, taskCreator, worker, unset)
// @Param coins query integer false "New coin balance"
// @Success 204 "Updated"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to update user"
// @Security BearerAuth
// @Router /users/{id} [patch]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	var params dto.UpdateUserParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid update parameters"})
		return
	}
	if params.Role == nil && params.Coins == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Either role or coins must be provided"})
		return
	}

	if params.Role != nil {
		if err := h.userService.SetUserRole(c.Request.Context(), userID, domain.Role(*params.Role)); err != nil {
			h.writeUpdateError(c, logger, err)
			return
		}
	}
	if params.Coins != nil {
		if err := h.userService.SetUserCoins(c.Request.Context(), userID, *params.Coins); err != nil {
			h.writeUpdateError(c, logger, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

func (h *userHandler) writeUpdateError(c *gin.Context, logger *slog.Logger, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}
	logger.Error("Failed to update user", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update user"})
}

// deleteUser godoc
// @Summary Delete a user
// @Description Removes a user record (admin only).
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to delete user"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	userID := c.Param("id")

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to delete user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete user"})
		return
	}

	c.Status(http.StatusNoContent)
}
