// Package social holds one adapter per login provider. Each adapter
// translates its provider's raw callback input into domain.SocialClaims;
// everything downstream (resolver, token issuer) is provider-agnostic.
package social

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"google.golang.org/api/idtoken"
)

// idTokenValidator matches idtoken.Validate; swapped out in tests.
type idTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// GoogleAdapter handles claims handed in by a client-side Google flow.
// When the payload includes an id_token and a client id is configured the
// token is verified and its claims win over the loose fields.
type GoogleAdapter struct {
	clientID string
	validate idTokenValidator
}

// NewGoogleAdapter creates the Google adapter.
func NewGoogleAdapter(clientID string) *GoogleAdapter {
	return &GoogleAdapter{clientID: clientID, validate: idtoken.Validate}
}

var _ portssvc.SocialAdapter = (*GoogleAdapter)(nil)

func (a *GoogleAdapter) Exchange(ctx context.Context, req dto.SocialAuthRequest) (domain.SocialClaims, error) {
	claims := domain.SocialClaims{
		Provider:       domain.ProviderGoogle,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ExternalID:     req.GoogleID,
		ProfilePicture: req.ProfilePicture,
	}

	if req.IDToken != "" {
		if a.clientID == "" {
			return domain.SocialClaims{}, apperrors.NewProviderError("google", "google client id is not configured", nil)
		}
		payload, err := a.validate(ctx, req.IDToken, a.clientID)
		if err != nil {
			return domain.SocialClaims{}, apperrors.NewProviderError("google", "id token validation failed", err)
		}
		claims.ExternalID = payload.Subject
		if email, _ := payload.Claims["email"].(string); email != "" {
			claims.Email = email
		}
		if given, _ := payload.Claims["given_name"].(string); given != "" {
			claims.FirstName = given
		}
		if family, _ := payload.Claims["family_name"].(string); family != "" {
			claims.LastName = family
		}
		if picture, _ := payload.Claims["picture"].(string); picture != "" && claims.ProfilePicture == "" {
			claims.ProfilePicture = picture
		}
	}

	if claims.Email == "" {
		return domain.SocialClaims{}, fmt.Errorf("%w: email is required for google authentication", apperrors.ErrValidation)
	}

	// Firebase-style flows don't always forward the subject; derive a
	// stable pseudo-id from the email so repeated logins map to the same
	// external id.
	if claims.ExternalID == "" {
		claims.ExternalID = GooglePseudoID(claims.Email)
	}
	return claims, nil
}

// GooglePseudoID derives a deterministic external id from an email. The
// 20-character truncation matches the id format existing accounts were
// stored under; the value is an identifier, not a security control.
func GooglePseudoID(email string) string {
	sum := sha256.Sum256([]byte(email))
	return "google_" + hex.EncodeToString(sum[:])[:20]
}
