package services

import (
	"context"
	"fmt"

	"github.com/ecodeed/academy_backend/internal/apperrors"
	"github.com/ecodeed/academy_backend/internal/core/domain"
	"github.com/ecodeed/academy_backend/internal/core/ports"
	portssvc "github.com/ecodeed/academy_backend/internal/core/ports/services"
	"github.com/ecodeed/academy_backend/internal/dto"
)

type userService struct {
	userRepo ports.UserRepository
}

// NewUserService creates the user management service.
func NewUserService(userRepo ports.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx, limit, offset)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	applyProfilePatch(user, req)
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) AdminUpdateUser(ctx context.Context, userID string, req dto.AdminUpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	applyProfilePatch(user, req.UpdateProfileRequest)
	if req.Role != nil {
		role, ok := domain.ParseRole(*req.Role)
		if !ok {
			return nil, fmt.Errorf("%w: invalid role %q", apperrors.ErrValidation, *req.Role)
		}
		user.Role = role
	}
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	if req.IsActive != nil && *req.IsActive != user.IsActive {
		if err := s.userRepo.SetActive(ctx, userID, *req.IsActive); err != nil {
			return nil, fmt.Errorf("failed to set active flag for user %s: %w", userID, err)
		}
		user.IsActive = *req.IsActive
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

func applyProfilePatch(user *domain.User, req dto.UpdateProfileRequest) {
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
}
