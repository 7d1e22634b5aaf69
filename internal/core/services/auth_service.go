package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/core/ports"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
	"github.com/ecodeed/academy_backend/internal/utils"
	"github.com/google/uuid"
)

// authService is the identity resolver: every login path (password or
// social) funnels through here and resolves to exactly one user row.
type authService struct {
	userRepo ports.UserRepository
}

// NewAuthService creates the identity resolver.
func NewAuthService(userRepo ports.UserRepository) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords don't match", apperrors.ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidation)
	}

	role := domain.RoleReader
	if req.Role != "" {
		parsed, ok := domain.ParseRole(req.Role)
		if !ok {
			return nil, fmt.Errorf("%w: invalid role %q", apperrors.ErrValidation, req.Role)
		}
		role = parsed
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
		DateJoined:   now,
	}

	// The insert is the uniqueness check: a concurrent registration for
	// the same email loses here with ErrDuplicateEmail.
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) LoginWithPassword(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a wrong password, so callers can't probe
			// which emails are registered.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		return nil, fmt.Errorf("failed to refresh last login: %w", err)
	}
	user.LastLogin = &now
	return user, nil
}

// ResolveSocialLogin applies the linking precedence on every social login:
//  1. a row already holding this provider id wins untouched;
//  2. else a row with the same email gets the provider id linked on;
//  3. else a new passwordless row is created.
func (s *authService) ResolveSocialLogin(ctx context.Context, claims domain.SocialClaims) (*domain.User, bool, error) {
	if claims.ExternalID == "" || claims.Email == "" {
		return nil, false, fmt.Errorf("%w: social claims missing external id or email", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByProviderID(ctx, claims.Provider, claims.ExternalID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up user by provider id: %w", err)
	}

	user, err = s.userRepo.FindUserByEmail(ctx, claims.Email)
	if err == nil {
		if linkErr := s.userRepo.LinkProvider(ctx, user.UserID, claims.Provider, claims.ExternalID, claims.ProfilePicture); linkErr != nil {
			return nil, false, linkErr
		}
		externalID := claims.ExternalID
		switch claims.Provider {
		case domain.ProviderGoogle:
			user.GoogleID = &externalID
		case domain.ProviderFacebook:
			user.FacebookID = &externalID
		case domain.ProviderTwitter:
			user.TwitterID = &externalID
		}
		if user.ProfilePicture == "" {
			user.ProfilePicture = claims.ProfilePicture
		}
		return user, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up user by email: %w", err)
	}

	externalID := claims.ExternalID
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Email:          strings.ToLower(claims.Email),
		FirstName:      claims.FirstName,
		LastName:       claims.LastName,
		Role:           domain.RoleReader,
		ProfilePicture: claims.ProfilePicture,
		IsActive:       true,
		DateJoined:     time.Now(),
	}
	switch claims.Provider {
	case domain.ProviderGoogle:
		newUser.GoogleID = &externalID
	case domain.ProviderFacebook:
		newUser.FacebookID = &externalID
	case domain.ProviderTwitter:
		newUser.TwitterID = &externalID
	default:
		return nil, false, fmt.Errorf("%w: unknown provider %q", apperrors.ErrValidation, claims.Provider)
	}

	if err := s.userRepo.CreateUser(ctx, newUser); err != nil {
		return nil, false, err
	}
	return &newUser, true, nil
}
