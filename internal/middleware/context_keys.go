package middleware

import (
	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// userIDKey stores the authenticated user's ID in the request context.
	userIDKey = contextKey("userID")
	// roleKey stores the authenticated user's role in the request context.
	roleKey = contextKey("role")
)

// GetUserIDFromContext retrieves the authenticated user ID set by
// AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// GetRoleFromContext retrieves the authenticated user's role set by
// AuthMiddleware.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	role, ok := c.Request.Context().Value(roleKey).(domain.Role)
	return role, ok
}
