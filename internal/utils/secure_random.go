package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateURLSafeToken generates a cryptographically secure random string
// of the specified byte length, base64url encoded without padding. Used
// for PKCE verifiers and OAuth state values.
func GenerateURLSafeToken(lengthInBytes int) (string, error) {
	b, err := randomBytes(lengthInBytes)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func randomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("length must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
