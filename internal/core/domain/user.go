package domain

import "time"

// AuthProvider identifies an external social login provider.
type AuthProvider string

const (
	ProviderGoogle   AuthProvider = "google"
	ProviderFacebook AuthProvider = "facebook"
	ProviderTwitter  AuthProvider = "twitter"
)

// User is the authoritative account record (the credential store row).
// Email is stored lowercased and is unique case-insensitively. PasswordHash
// is empty for accounts created through a social flow.
type User struct {
	UserID         string     `json:"userID"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Role           Role       `json:"role"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	PhoneNumber    string     `json:"phoneNumber,omitempty"`
	GoogleID       *string    `json:"-"`
	FacebookID     *string    `json:"-"`
	TwitterID      *string    `json:"-"`
	IsActive       bool       `json:"isActive"`
	DateJoined     time.Time  `json:"dateJoined"`
	LastLogin      *time.Time `json:"lastLogin,omitempty"`
}

// FullName returns first and last name separated by a space.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ProviderID returns the stored external id for the given provider, if any.
func (u User) ProviderID(p AuthProvider) *string {
	switch p {
	case ProviderGoogle:
		return u.GoogleID
	case ProviderFacebook:
		return u.FacebookID
	case ProviderTwitter:
		return u.TwitterID
	}
	return nil
}
