package user

import (
	"context"
	"fmt"

	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type SettingsServiceImpl struct {
	user.UserRepository
	bcryptCost int
}

func NewSettingsService(userRepository user.UserRepository) user.SettingsService {
	return &SettingsServiceImpl{
		UserRepository: userRepository,
		bcryptCost:     bcrypt.DefaultCost,
	}
}

// GetProfile implements user.SettingsService.
func (s *SettingsServiceImpl) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// UpdateProfile implements user.SettingsService.
func (s *SettingsServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}
	if req.Email != nil && *req.Email == "" {
		req.Email = nil
	}

	updated, err := s.UserRepository.UpdateProfile(ctx, userID, req)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

// ChangePassword implements user.SettingsService.
func (s *SettingsServiceImpl) ChangePassword(ctx context.Context, userID string, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrInvalidCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.UserRepository.UpdatePassword(ctx, u.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
