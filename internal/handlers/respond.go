package handlers

import (
	"errors"
	"net/http"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError translates service-layer errors into HTTP responses. The
// wrapped cause goes to the log; the client sees only the mapped message.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, appErr)
		return
	}

	// Upstream provider failures are caller-retryable from the API's point
	// of view: the exchange input was bad or stale, not this service. The
	// diagnostic detail stays in the log.
	var provErr *apperrors.ProviderError
	if errors.As(err, &provErr) {
		logger.Error("Provider exchange failed", "provider", provErr.Provider, "error", provErr.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authentication with the provider failed"})
		return
	}

	// Token errors reaching this point come from a logout or refresh body,
	// which is caller input; the 401s for a bad access token are emitted by
	// the auth middleware.
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account is disabled"})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token has expired"})
	case errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token has been revoked"})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
	case errors.Is(err, apperrors.ErrCsrfMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired state parameter"})
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
	case errors.Is(err, apperrors.ErrDuplicateProviderID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Social account already linked to another user"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	default:
		logger.Error("Unhandled service error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
