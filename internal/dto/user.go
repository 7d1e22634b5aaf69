package dto

import (
	"time"

	"github.com/ecodeed/academy_backend/internal/core/domain"
)

// UserResponse is the externally visible identity view. It never carries
// the password hash or provider ids.
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	DateJoined     time.Time `json:"date_joined"`
}

// ToUserResponse converts a domain.User to its external view.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.UserID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           string(u.Role),
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
		PhoneNumber:    u.PhoneNumber,
		DateJoined:     u.DateJoined,
	}
}

// UpdateProfileRequest is the self-service profile patch. Pointers
// distinguish omitted fields from zero values.
type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	ProfilePicture *string `json:"profile_picture"`
	Bio            *string `json:"bio"`
	PhoneNumber    *string `json:"phone_number"`
}

// AdminUpdateUserRequest extends the profile patch with role and active
// flag, admin only.
type AdminUpdateUserRequest struct {
	UpdateProfileRequest
	Role     *string `json:"role" binding:"omitempty,userrole"`
	IsActive *bool   `json:"is_active"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the admin user listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain users.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
