package dto

import "github.com/ecodeed/academy_backend/internal/core/domain"

// RegisterRequest is the direct-registration payload.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FirstName       string `json:"first_name" binding:"required,max=30"`
	LastName        string `json:"last_name" binding:"required,max=30"`
	Role            string `json:"role"`
}

// LoginRequest is the email/password login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token for rotation or logout.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// AuthResponse is the payload returned by register, login, and social
// exchange: the identity view plus the token pair.
type AuthResponse struct {
	User    UserResponse `json:"user"`
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	Created *bool        `json:"created,omitempty"`
}

// NewAuthResponse builds an AuthResponse from a user and token pair.
func NewAuthResponse(user *domain.User, pair domain.TokenPair) AuthResponse {
	return AuthResponse{
		User:    ToUserResponse(user),
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}
}

// AccessTokenResponse is returned by the refresh endpoint.
type AccessTokenResponse struct {
	Access string `json:"access"`
}
