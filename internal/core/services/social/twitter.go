package social

import (
	"context"
	"fmt"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
)

// TwitterAdapter handles claims handed in by a client that already ran the
// Twitter flow itself. The server-driven PKCE flow lives in TwitterOAuthService.
type TwitterAdapter struct{}

// NewTwitterAdapter creates the direct Twitter adapter.
func NewTwitterAdapter() *TwitterAdapter { return &TwitterAdapter{} }

var _ portssvc.SocialAdapter = (*TwitterAdapter)(nil)

func (a *TwitterAdapter) Exchange(_ context.Context, req dto.SocialAuthRequest) (domain.SocialClaims, error) {
	if req.TwitterID == "" {
		return domain.SocialClaims{}, fmt.Errorf("%w: twitter authentication needs a twitter id", apperrors.ErrValidation)
	}

	claims := domain.SocialClaims{
		Provider:       domain.ProviderTwitter,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ExternalID:     req.TwitterID,
		ProfilePicture: req.ProfilePicture,
	}
	// Twitter's API does not expose emails without special approval.
	if claims.Email == "" {
		claims.Email = TwitterPlaceholderEmail(req.TwitterID)
	}
	return claims, nil
}

// TwitterPlaceholderEmail builds the stand-in address used when the
// Twitter account's email is unavailable.
func TwitterPlaceholderEmail(twitterID string) string {
	return fmt.Sprintf("twitter_%s@twitter.placeholder.com", twitterID)
}
