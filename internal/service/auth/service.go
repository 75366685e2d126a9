package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/managely-hr/hr-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
	auth.RefreshTokenRepository
	bcryptCost int
}

func NewAuthService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, refreshTokenRepository auth.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:         userRepository,
		EmployeeRepository:     employeeRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
		bcryptCost:             bcrypt.DefaultCost,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// LoginAdmin implements auth.AuthService.
func (a *AuthServiceImpl) LoginAdmin(ctx context.Context, req auth.AdminLoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, jwt.AccessClaims{
		SubjectID:   userData.ID,
		SubjectType: string(auth.SubjectUser),
		Role:        userData.Role,
		Name:        userData.DisplayName(),
	}, false, session)
}

// LoginEmployee implements auth.AuthService.
func (a *AuthServiceImpl) LoginEmployee(ctx context.Context, req auth.EmployeeLoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	employeeData, err := a.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employeeData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !employeeData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(ctx, employeeClaims(employeeData), employeeData.FirstLogin, session)
}

func employeeClaims(e employee.Employee) jwt.AccessClaims {
	id := e.ID
	return jwt.AccessClaims{
		SubjectID:   e.ID,
		SubjectType: string(auth.SubjectEmployee),
		EmployeeID:  &id,
		Role:        user.RoleEmployee,
		Name:        e.FullName,
	}
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, claims jwt.AccessClaims, mustChangePassword bool, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var (
		tokenResponse auth.TokenResponse
		err           error
	)

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(claims)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(claims.SubjectID, claims.SubjectType)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.RefreshTokenRepository.Create(ctx, claims.SubjectID, auth.SubjectType(claims.SubjectType), tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, session)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}

	tokenResponse.Role = string(claims.Role)
	tokenResponse.MustChangePassword = mustChangePassword
	return tokenResponse, nil
}

// ChangeFirstLoginPassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangeFirstLoginPassword(ctx context.Context, principal auth.Principal, req auth.FirstLoginPasswordRequest) error {
	if !principal.IsEmployee() {
		return user.ErrEmployeeAccessRequired
	}
	if err := req.Validate(); err != nil {
		return err
	}

	employeeData, err := a.EmployeeRepository.GetByID(ctx, principal.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}
	if !employeeData.FirstLogin {
		return auth.ErrPasswordAlreadyChanged
	}

	hash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.EmployeeRepository.UpdatePassword(ctx, employeeData.ID, hash, false); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	subjectID, subjectType, err := a.Service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	record, err := a.RefreshTokenRepository.Lookup(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrRefreshTokenNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if record.Revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if record.SubjectID != subjectID || string(record.SubjectType) != subjectType {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	var claims jwt.AccessClaims
	switch auth.SubjectType(subjectType) {
	case auth.SubjectUser:
		userData, err := a.UserRepository.GetByID(ctx, subjectID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return auth.AccessTokenResponse{}, auth.ErrInvalidToken
			}
			return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user: %w", err)
		}
		claims = jwt.AccessClaims{
			SubjectID:   userData.ID,
			SubjectType: subjectType,
			Role:        userData.Role,
			Name:        userData.DisplayName(),
		}
	case auth.SubjectEmployee:
		employeeData, err := a.EmployeeRepository.GetByID(ctx, subjectID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return auth.AccessTokenResponse{}, auth.ErrInvalidToken
			}
			return auth.AccessTokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
		if !employeeData.IsActive {
			return auth.AccessTokenResponse{}, auth.ErrAccountInactive
		}
		claims = employeeClaims(employeeData)
	default:
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(claims)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return resp, nil
}

// Logout implements auth.AuthService. Both tokens are optional; whatever is
// presented gets revoked.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string, accessToken string) error {
	if refreshToken != "" {
		if err := a.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}
	if accessToken != "" {
		if err := a.Service.RevokeToken(ctx, accessToken); err != nil {
			return fmt.Errorf("failed to revoke access token: %w", err)
		}
	}
	return nil
}

// EnsureBootstrapAdmin implements auth.AuthService.
func (a *AuthServiceImpl) EnsureBootstrapAdmin(ctx context.Context, req auth.BootstrapAdminRequest) (bool, error) {
	exists, err := a.UserRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return false, fmt.Errorf("failed to check bootstrap admin: %w", err)
	}
	if exists {
		return false, nil
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
	}
	if req.Email != "" {
		newUser.Email = &req.Email
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return false, fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	slog.Info("bootstrap admin created", "user_id", created.ID, "username", created.Username)
	return true, nil
}
