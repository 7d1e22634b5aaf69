package services

import (
	"context"

	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/dto"
)

// UserSvcFacade exposes profile and administrative user management.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// UpdateProfile applies a partial self-service update (names, picture,
	// bio, phone). Email, password, and role are not touchable here.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// AdminUpdateUser lets administrators change role and active flag in
	// addition to profile fields.
	AdminUpdateUser(ctx context.Context, userID string, req dto.AdminUpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
