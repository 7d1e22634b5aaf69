package utils_test

import (
	"testing"
	"time"

	"github.com/ecodeed/academy_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "STUDENT", utils.TokenTypeRefresh, "jti-1", "secret", "issuer", time.Hour)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "STUDENT", claims.Role)
	assert.Equal(t, utils.TokenTypeRefresh, claims.TokenType)
	assert.Equal(t, "jti-1", claims.ID)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "STUDENT", utils.TokenTypeAccess, "", "secret", "issuer", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	require.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "STUDENT", utils.TokenTypeAccess, "", "secret", "issuer", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseJWT_RejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(raw, "secret")
	require.Error(t, err)
}
