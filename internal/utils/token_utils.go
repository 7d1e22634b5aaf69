package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTypeAccess marks short-lived tokens used to authorize requests.
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks long-lived tokens used to mint new access
	// tokens; their ID (jti) is what the blacklist tracks.
	TokenTypeRefresh = "refresh"
)

// TokenClaims are the signed (not encrypted) claims both token kinds
// carry. Nothing secret goes in here.
type TokenClaims struct {
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a token for the given subject. jti may be empty for
// access tokens.
func GenerateJWT(userID, role, tokenType, jti, secret, issuer string, expiryDuration time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature
// and standard claims. The returned error includes jwt.ErrTokenExpired in
// its chain when the token is merely stale.
func ParseAndValidateJWT(tokenString string, secretKey string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
