package user

import "context"

// SettingsService backs the back-office account settings page.
type SettingsService interface {
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}
