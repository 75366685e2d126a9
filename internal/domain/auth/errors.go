package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountInactive        = errors.New("account is inactive")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked    = errors.New("refresh token has been revoked")
	ErrRefreshTokenNotFound   = errors.New("refresh token not found")
	ErrPasswordAlreadyChanged = errors.New("password has already been changed")
	ErrUnauthenticated        = errors.New("authentication required")
)
