package social

import (
	"context"
	"fmt"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
)

// FacebookAdapter handles claims handed in by a client-side Facebook flow.
// Facebook accounts created via phone number carry no email, so the
// adapter synthesizes a placeholder address from the facebook id.
type FacebookAdapter struct{}

// NewFacebookAdapter creates the Facebook adapter.
func NewFacebookAdapter() *FacebookAdapter { return &FacebookAdapter{} }

var _ portssvc.SocialAdapter = (*FacebookAdapter)(nil)

func (a *FacebookAdapter) Exchange(_ context.Context, req dto.SocialAuthRequest) (domain.SocialClaims, error) {
	if req.Email == "" && req.FacebookID == "" {
		return domain.SocialClaims{}, fmt.Errorf("%w: facebook authentication needs an email or a facebook id", apperrors.ErrValidation)
	}

	claims := domain.SocialClaims{
		Provider:       domain.ProviderFacebook,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ExternalID:     req.FacebookID,
		ProfilePicture: req.ProfilePicture,
	}
	if claims.Email == "" {
		claims.Email = FacebookPlaceholderEmail(req.FacebookID)
	}
	return claims, nil
}

// FacebookPlaceholderEmail builds the stand-in address used when Facebook
// does not share the user's email.
func FacebookPlaceholderEmail(facebookID string) string {
	return fmt.Sprintf("fb_%s@facebook.placeholder.com", facebookID)
}
