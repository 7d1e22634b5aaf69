package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer access token and stores the subject
// user ID and role in the request context.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, role, err := tokenSvc.VerifyAccessToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid access token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)
		ctx = context.WithValue(ctx, loggerCtxKey, logger.With(slog.String("user_id", userID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin rejects requests whose role may not manage users.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(func(c *gin.Context) bool {
		role, ok := GetRoleFromContext(c)
		return ok && role.CanManageUsers()
	})
}

// RequireCourseManager rejects requests whose role may not manage courses.
func RequireCourseManager() gin.HandlerFunc {
	return requireRole(func(c *gin.Context) bool {
		role, ok := GetRoleFromContext(c)
		return ok && role.CanManageCourses()
	})
}

func requireRole(allowed func(c *gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
