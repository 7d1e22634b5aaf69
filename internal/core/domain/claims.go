package domain

// SocialClaims is the normalized attribute set every social provider
// adapter produces. The identity resolver only ever sees this shape, which
// is what keeps the adapters swappable.
type SocialClaims struct {
	Provider       AuthProvider
	ExternalID     string
	Email          string
	FirstName      string
	LastName       string
	ProfilePicture string
}

// TokenPair is the access/refresh pair returned by the token issuer. It is
// never persisted; the refresh token's jti is what the blacklist tracks.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
