package auth

import (
	"strings"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

// AdminLoginRequest authenticates a back-office user.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *AdminLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Username = strings.TrimSpace(r.Username)
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeLoginRequest authenticates an employee with the code issued at onboarding.
type EmployeeLoginRequest struct {
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

func (r *EmployeeLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.ToUpper(strings.TrimSpace(r.EmployeeCode))
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must look like EM2025001",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FirstLoginPasswordRequest replaces the temporary password handed out on onboarding.
type FirstLoginPasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required,min=6,max=255"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

func (r *FirstLoginPasswordRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RefreshToken) {
		errs.Add("refresh_token", "refresh_token is required")
	}
	return errs.OrNil()
}

// SessionTrackingRequest carries client metadata stored alongside refresh tokens.
type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
	Role                  string `json:"role"`
	MustChangePassword    bool   `json:"must_change_password"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
