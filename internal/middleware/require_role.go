package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/earnbuddy/backend/internal/apperrors"
	"github.com/earnbuddy/backend/internal/core/domain"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireRole creates a Gin middleware that loads the authenticated caller's
// user record and aborts with 403 unless its role is one of the allowed
// roles. The loaded record is stored in the context so handlers do not have
// to fetch it again. Must run after AuthMiddleware.
func RequireRole(users portssvc.UserReaderSvc, allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		email, ok := GetUserEmailFromContext(c)
		if !ok {
			logger.Error("Authenticated email not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := users.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("No user record for authenticated email")
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
				return
			}
			logger.Error("Failed to load user for role check", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		for _, role := range allowed {
			if user.Role == role {
				c.Set(string(currentUserKey), user)
				c.Next()
				return
			}
		}

		logger.Warn("Role not permitted for endpoint", slog.String("role", string(user.Role)))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}
