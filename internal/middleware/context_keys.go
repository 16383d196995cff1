package middleware

import (
	"github.com/earnbuddy/backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private key type for values stored in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey contextKey = "logger"
	// userEmailKey is the key under which the authenticated caller's email
	// (the token's subject claim) is stored.
	userEmailKey contextKey = "userEmail"
	// currentUserKey is the key under which the role middleware stores the
	// loaded user record, so handlers do not have to fetch it again.
	currentUserKey contextKey = "currentUser"
)

// GetUserEmailFromContext retrieves the authenticated caller's email from the
// Gin context. It returns the email and a boolean indicating if it was found.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	emailVal, exists := c.Get(string(userEmailKey))
	if !exists {
		// check in the request context as well
		v := c.Request.Context().Value(userEmailKey)
		if v != nil {
			return v.(string), true
		}
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok {
		return "", false
	}
	return email, true
}

// GetCurrentUserFromContext retrieves the user record loaded by the role
// middleware, if any.
func GetCurrentUserFromContext(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(string(currentUserKey))
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}
