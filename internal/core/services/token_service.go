package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/core/ports"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/platform/config"
	"github.com/ecodeed/academy_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenService mints and verifies the HS256 access/refresh pair. Both
// tokens are signed, not encrypted; nothing secret goes in the claims.
// Revocation works by recording the refresh token's jti in the blacklist.
type tokenService struct {
	cfg       *config.Config
	blacklist ports.TokenBlacklistRepository
}

// NewTokenService creates the token issuer.
func NewTokenService(cfg *config.Config, blacklist ports.TokenBlacklistRepository) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, blacklist: blacklist}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) IssueTokenPair(ctx context.Context, user *domain.User) (domain.TokenPair, error) {
	access, err := utils.GenerateJWT(user.UserID, string(user.Role), utils.TokenTypeAccess, "",
		s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := utils.GenerateJWT(user.UserID, string(user.Role), utils.TokenTypeRefresh, uuid.NewString(),
		s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.RefreshTokenExpiryDuration)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return domain.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *tokenService) VerifyAccessToken(ctx context.Context, raw string) (string, domain.Role, error) {
	claims, err := utils.ParseAndValidateJWT(raw, s.cfg.JWTSecret)
	if err != nil {
		return "", "", mapJWTError(err)
	}
	if claims.TokenType != utils.TokenTypeAccess || claims.Subject == "" {
		return "", "", apperrors.ErrTokenInvalid
	}
	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return "", "", apperrors.ErrTokenInvalid
	}
	return claims.Subject, role, nil
}

func (s *tokenService) Refresh(ctx context.Context, rawRefresh string) (string, error) {
	claims, err := s.parseRefresh(rawRefresh)
	if err != nil {
		return "", err
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("failed to check blacklist: %w", err)
	}
	if revoked {
		return "", apperrors.ErrTokenRevoked
	}

	access, err := utils.GenerateJWT(claims.Subject, claims.Role, utils.TokenTypeAccess, "",
		s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return access, nil
}

func (s *tokenService) Revoke(ctx context.Context, rawRefresh string) error {
	claims, err := s.parseRefresh(rawRefresh)
	if err != nil {
		// Nothing usable to revoke; expired tokens included, since they
		// can no longer be redeemed anyway.
		return apperrors.ErrTokenInvalid
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("failed to check blacklist: %w", err)
	}
	if revoked {
		return apperrors.ErrTokenInvalid
	}

	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.blacklist.Add(ctx, claims.ID, claims.Subject, expiresAt); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (s *tokenService) parseRefresh(raw string) (*utils.TokenClaims, error) {
	claims, err := utils.ParseAndValidateJWT(raw, s.cfg.JWTSecret)
	if err != nil {
		return nil, mapJWTError(err)
	}
	if claims.TokenType != utils.TokenTypeRefresh || claims.ID == "" || claims.Subject == "" {
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}

// mapJWTError collapses library errors into the two externally meaningful
// failure kinds.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return apperrors.ErrTokenExpired
	}
	return apperrors.ErrTokenInvalid
}
