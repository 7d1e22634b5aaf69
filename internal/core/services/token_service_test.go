package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/core/services"
	"github.com/ecodeed/academy_backend/internal/platform/config"
	"github.com/ecodeed/academy_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg           *config.Config
	mockBlacklist *MockTokenBlacklistRepository
	service       portssvc.TokenSvcFacade
	user          *domain.User
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-not-for-production",
		JWTIssuer:                  "academy-test",
		JWTExpiryDuration:          time.Hour,
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	suite.mockBlacklist = new(MockTokenBlacklistRepository)
	suite.service = services.NewTokenService(suite.cfg, suite.mockBlacklist)
	suite.user = &domain.User{
		UserID: uuid.NewString(),
		Email:  "token@example.com",
		Role:   domain.RoleMentor,
	}
}

func (suite *TokenServiceTestSuite) TestIssueAndVerify() {
	ctx := context.Background()
	pair, err := suite.service.IssueTokenPair(ctx, suite.user)
	suite.Require().NoError(err)
	suite.NotEmpty(pair.Access)
	suite.NotEmpty(pair.Refresh)
	suite.NotEqual(pair.Access, pair.Refresh)

	userID, role, err := suite.service.VerifyAccessToken(ctx, pair.Access)
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, userID)
	suite.Equal(domain.RoleMentor, role)
}

func (suite *TokenServiceTestSuite) TestVerify_RejectsRefreshToken() {
	ctx := context.Background()
	pair, err := suite.service.IssueTokenPair(ctx, suite.user)
	suite.Require().NoError(err)

	// The refresh token is signed with the same key but carries the wrong
	// token type.
	_, _, err = suite.service.VerifyAccessToken(ctx, pair.Refresh)
	suite.Require().ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *TokenServiceTestSuite) TestVerify_Expired() {
	expired, err := utils.GenerateJWT(suite.user.UserID, string(suite.user.Role), utils.TokenTypeAccess, "",
		suite.cfg.JWTSecret, suite.cfg.JWTIssuer, -time.Minute)
	suite.Require().NoError(err)

	_, _, err = suite.service.VerifyAccessToken(context.Background(), expired)
	suite.Require().ErrorIs(err, apperrors.ErrTokenExpired)
}

func (suite *TokenServiceTestSuite) TestVerify_WrongKey() {
	forged, err := utils.GenerateJWT(suite.user.UserID, string(suite.user.Role), utils.TokenTypeAccess, "",
		"some-other-secret", suite.cfg.JWTIssuer, time.Hour)
	suite.Require().NoError(err)

	_, _, err = suite.service.VerifyAccessToken(context.Background(), forged)
	suite.Require().ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *TokenServiceTestSuite) TestVerify_Malformed() {
	_, _, err := suite.service.VerifyAccessToken(context.Background(), "not-a-jwt")
	suite.Require().ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *TokenServiceTestSuite) TestRefresh_Success() {
	ctx := context.Background()
	pair, err := suite.service.IssueTokenPair(ctx, suite.user)
	suite.Require().NoError(err)

	suite.mockBlacklist.IsBlacklistedFn = func(ctx context.Context, jti string) (bool, error) {
		suite.NotEmpty(jti)
		return false, nil
	}

	access, err := suite.service.Refresh(ctx, pair.Refresh)
	suite.Require().NoError(err)

	userID, role, err := suite.service.VerifyAccessToken(ctx, access)
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, userID)
	suite.Equal(suite.user.Role, role)
}

func (suite *TokenServiceTestSuite) TestRefresh_RejectsAccessToken() {
	ctx := context.Background()
	pair, err := suite.service.IssueTokenPair(ctx, suite.user)
	suite.Require().NoError(err)

	_, err = suite.service.Refresh(ctx, pair.Access)
	suite.Require().ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *TokenServiceTestSuite) TestRefresh_Revoked() {
	ctx := context.Background()
	pair, err := suite.service.IssueTokenPair(ctx, suite.user)
	suite.Require().NoError(err)

	suite.mockBlacklist.IsBlacklistedFn = func(ctx context.Context, jti string) (bool, error) {
		return true, nil
	}

	_, err = suite.service.Refresh(ctx, pair.Refresh)
	suite.Require().ErrorIs(err, apperrors.ErrTokenRevoked)
}

func (suite *TokenServiceTestSuite) TestRevoke_ThenRefreshFails() {
	ctx := context.Background()
	pair, err := suite.service.IssueTokenPair(ctx, suite.user)
	suite.Require().NoError(err)

	blacklisted := map[string]bool{}
	suite.mockBlacklist.AddFn = func(ctx context.Context, jti, userID string, expiresAt time.Time) error {
		suite.Equal(suite.user.UserID, userID)
		suite.True(expiresAt.After(time.Now()))
		blacklisted[jti] = true
		return nil
	}
	suite.mockBlacklist.IsBlacklistedFn = func(ctx context.Context, jti string) (bool, error) {
		return blacklisted[jti], nil
	}

	suite.Require().NoError(suite.service.Revoke(ctx, pair.Refresh))

	_, err = suite.service.Refresh(ctx, pair.Refresh)
	suite.Require().ErrorIs(err, apperrors.ErrTokenRevoked)

	// Revoking again is an error: the jti is already blacklisted.
	err = suite.service.Revoke(ctx, pair.Refresh)
	suite.Require().ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *TokenServiceTestSuite) TestRevoke_Malformed() {
	err := suite.service.Revoke(context.Background(), "garbage")
	suite.Require().ErrorIs(err, apperrors.ErrTokenInvalid)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
