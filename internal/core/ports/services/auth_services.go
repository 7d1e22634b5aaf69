package services

import (
	"context"

	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/dto"
)

// AuthSvcFacade is the identity resolver: it turns credentials or
// normalized social claims into exactly one identity.
type AuthSvcFacade interface {
	// Register creates an identity from a direct registration. Validation
	// failures return apperrors.ErrValidation; an existing email returns
	// apperrors.ErrDuplicateEmail.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// LoginWithPassword authenticates by email and plaintext password and
	// refreshes last_login. Unknown email and wrong password both return
	// apperrors.ErrInvalidCredentials; an inactive account returns
	// apperrors.ErrAccountDisabled.
	LoginWithPassword(ctx context.Context, email, password string) (*domain.User, error)

	// ResolveSocialLogin applies the linking precedence (provider id, then
	// email, then create) and reports whether a new identity was created.
	ResolveSocialLogin(ctx context.Context, claims domain.SocialClaims) (user *domain.User, created bool, err error)
}

// TokenSvcFacade mints, verifies, refreshes, and revokes token pairs.
type TokenSvcFacade interface {
	IssueTokenPair(ctx context.Context, user *domain.User) (domain.TokenPair, error)

	// VerifyAccessToken checks signature and expiry only (stateless) and
	// returns the token's subject user id and role.
	VerifyAccessToken(ctx context.Context, raw string) (userID string, role domain.Role, err error)

	// Refresh mints a new access token from a valid, non-revoked refresh
	// token.
	Refresh(ctx context.Context, rawRefresh string) (access string, err error)

	// Revoke blacklists the refresh token's identifier. Malformed or
	// already-revoked input returns apperrors.ErrTokenInvalid.
	Revoke(ctx context.Context, rawRefresh string) error
}

// SocialAdapter translates one provider's raw callback input into the
// normalized claim set the identity resolver expects.
type SocialAdapter interface {
	Exchange(ctx context.Context, req dto.SocialAuthRequest) (domain.SocialClaims, error)
}

// TwitterOAuthSvcFacade implements the two-step OAuth2 PKCE flow against
// Twitter/X.
type TwitterOAuthSvcFacade interface {
	// Authorize generates the verifier/challenge/state triple, stores the
	// state and verifier server-side for single use, and returns the
	// provider authorization URL.
	Authorize(ctx context.Context) (dto.TwitterAuthorizeResponse, error)

	// ExchangeCallback consumes the stored state (exactly once), exchanges
	// the code for an upstream token, fetches the profile, and returns
	// normalized claims. A missing, mismatched, or reused state returns
	// apperrors.ErrCsrfMismatch.
	ExchangeCallback(ctx context.Context, code, state string) (domain.SocialClaims, error)
}

// DeletionSvcFacade handles account data-deletion requests. The response
// is uniform whether or not the email is registered.
type DeletionSvcFacade interface {
	RequestDeletion(ctx context.Context, email, reason string) (confirmationCode string, err error)
}
