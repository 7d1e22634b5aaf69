package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the authentication core. Services return these;
// handlers translate them to HTTP responses.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateEmail indicates the email already belongs to an identity.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateProviderID indicates the social provider id is already
	// linked to a different identity.
	ErrDuplicateProviderID = errors.New("social account already linked to another user")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password, deliberately indistinguishable to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled indicates the identity exists but is inactive.
	ErrAccountDisabled = errors.New("user account is disabled")

	// ErrTokenInvalid indicates a malformed or badly signed token.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired indicates a token past its expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenRevoked indicates a refresh token whose identifier is
	// blacklisted.
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrCsrfMismatch indicates a social callback whose state does not
	// match the one issued, or one that was already consumed.
	ErrCsrfMismatch = errors.New("invalid state parameter")

	// ErrForbidden indicates the caller's role does not permit the action.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthorized indicates a missing or unusable credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicate indicates a generic uniqueness conflict.
	ErrDuplicate = errors.New("resource already exists")
)

// AppError carries an HTTP status alongside a caller-facing message. The
// wrapped error is for logs only and is never serialized.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// ProviderError wraps a failed upstream social-provider exchange. Detail
// is diagnostic only; callers see a generic message.
type ProviderError struct {
	Provider string
	Detail   string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s provider error: %s: %v", e.Provider, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s provider error: %s", e.Provider, e.Detail)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError creates a ProviderError for the named provider.
func NewProviderError(provider, detail string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Detail: detail, Err: err}
}
