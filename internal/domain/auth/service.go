package auth

import (
	"context"
)

type AuthService interface {
	LoginAdmin(ctx context.Context, req AdminLoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	LoginEmployee(ctx context.Context, req EmployeeLoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	ChangeFirstLoginPassword(ctx context.Context, principal Principal, req FirstLoginPasswordRequest) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string, accessToken string) error
	EnsureBootstrapAdmin(ctx context.Context, req BootstrapAdminRequest) (created bool, err error)
}

// BootstrapAdminRequest seeds the first back-office account.
type BootstrapAdminRequest struct {
	Username string
	Password string
	Email    string
	FullName string
}

// RefreshTokenRecord is a persisted refresh token, stored hashed.
type RefreshTokenRecord struct {
	SubjectID   string
	SubjectType SubjectType
	Revoked     bool
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, subjectID string, subjectType SubjectType, token string, expiresAt int64, session SessionTrackingRequest) error
	// Lookup returns ErrRefreshTokenNotFound for unknown tokens. Expired
	// tokens come back with Revoked set.
	Lookup(ctx context.Context, token string) (RefreshTokenRecord, error)
	Revoke(ctx context.Context, token string) error
}
