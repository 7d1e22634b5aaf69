package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/ecodeed/academy_backend/internal/platform/statestore"
	"github.com/ecodeed/academy_backend/internal/utils"
	"golang.org/x/oauth2"
)

const (
	twitterAuthURL     = "https://twitter.com/i/oauth2/authorize"
	twitterTokenURL    = "https://api.twitter.com/2/oauth2/token"
	twitterUserInfoURL = "https://api.twitter.com/2/users/me?user.fields=id,name,username,profile_image_url"

	stateByteLength = 16
)

var twitterScopes = []string{"tweet.read", "users.read", "offline.access"}

// TwitterOAuthService drives the server-side PKCE flow. The state and the
// code verifier live in the state store between the authorize and callback
// steps, keyed by the state value so the two requests may hit different
// instances.
type TwitterOAuthService struct {
	oauth       oauth2.Config
	store       statestore.Store
	stateTTL    time.Duration
	timeout     time.Duration
	userInfoURL string
}

// NewTwitterOAuthService creates the PKCE flow service.
func NewTwitterOAuthService(clientID, clientSecret, callbackURL string, store statestore.Store, stateTTL, timeout time.Duration) *TwitterOAuthService {
	return &TwitterOAuthService{
		oauth: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       twitterScopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   twitterAuthURL,
				TokenURL:  twitterTokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		store:       store,
		stateTTL:    stateTTL,
		timeout:     timeout,
		userInfoURL: twitterUserInfoURL,
	}
}

var _ portssvc.TwitterOAuthSvcFacade = (*TwitterOAuthService)(nil)

// Configured reports whether Twitter credentials were provided.
func (s *TwitterOAuthService) Configured() bool {
	return s.oauth.ClientID != "" && s.oauth.RedirectURL != ""
}

func (s *TwitterOAuthService) Authorize(ctx context.Context) (dto.TwitterAuthorizeResponse, error) {
	if !s.Configured() {
		return dto.TwitterAuthorizeResponse{}, apperrors.NewProviderError("twitter", "twitter oauth is not configured", nil)
	}

	state, err := utils.GenerateURLSafeToken(stateByteLength)
	if err != nil {
		return dto.TwitterAuthorizeResponse{}, fmt.Errorf("failed to generate oauth state: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	if err := s.store.Put(ctx, state, verifier, s.stateTTL); err != nil {
		return dto.TwitterAuthorizeResponse{}, fmt.Errorf("failed to store oauth state: %w", err)
	}

	return dto.TwitterAuthorizeResponse{
		AuthURL: s.oauth.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)),
		State:   state,
	}, nil
}

func (s *TwitterOAuthService) ExchangeCallback(ctx context.Context, code, state string) (domain.SocialClaims, error) {
	verifier, err := s.store.Consume(ctx, state)
	if err != nil {
		if errors.Is(err, statestore.ErrNotFound) {
			return domain.SocialClaims{}, apperrors.ErrCsrfMismatch
		}
		return domain.SocialClaims{}, fmt.Errorf("failed to consume oauth state: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	token, err := s.oauth.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return domain.SocialClaims{}, apperrors.NewProviderError("twitter", "code exchange failed", err)
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		return domain.SocialClaims{}, err
	}

	first, last := splitDisplayName(profile.Name)
	if first == "" {
		first = profile.Username
	}
	return domain.SocialClaims{
		Provider:       domain.ProviderTwitter,
		ExternalID:     profile.ID,
		Email:          fmt.Sprintf("%s@twitter.placeholder.com", profile.Username),
		FirstName:      first,
		LastName:       last,
		ProfilePicture: originalImageURL(profile.ProfileImageURL),
	}, nil
}

type twitterProfile struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (s *TwitterOAuthService) fetchProfile(ctx context.Context, token *oauth2.Token) (twitterProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return twitterProfile{}, fmt.Errorf("failed to build profile request: %w", err)
	}

	resp, err := s.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return twitterProfile{}, apperrors.NewProviderError("twitter", "profile fetch failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return twitterProfile{}, apperrors.NewProviderError("twitter", "profile read failed", err)
	}
	if resp.StatusCode != http.StatusOK {
		return twitterProfile{}, apperrors.NewProviderError("twitter", fmt.Sprintf("profile fetch returned status %d", resp.StatusCode), nil)
	}

	var payload struct {
		Data twitterProfile `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return twitterProfile{}, apperrors.NewProviderError("twitter", "profile decode failed", err)
	}
	if payload.Data.ID == "" {
		return twitterProfile{}, apperrors.NewProviderError("twitter", "profile response missing user id", nil)
	}
	return payload.Data, nil
}

// splitDisplayName splits a display name on the first space. Everything
// after it becomes the last name.
func splitDisplayName(name string) (first, last string) {
	first, last, _ = strings.Cut(strings.TrimSpace(name), " ")
	return first, last
}

// originalImageURL rewrites Twitter's downsized avatar URL to the
// full-resolution variant.
func originalImageURL(url string) string {
	return strings.Replace(url, "_normal", "", 1)
}
