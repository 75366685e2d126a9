package user

import (
	"time"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     *string `json:"email,omitempty"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// UpdateProfileRequest is the back-office "settings" form.
type UpdateProfileRequest struct {
	FullName string  `json:"full_name" validate:"required,max=150"`
	Email    *string `json:"email,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "email must be a valid email address")
	}
	return errs.OrNil()
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=255"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	return validator.Struct(r).OrNil()
}
