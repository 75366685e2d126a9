package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
	"github.com/managely-hr/hr-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginEmployee(w http.ResponseWriter, r *http.Request)
	ChangeFirstLoginPassword(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

func sessionFrom(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

// Login implements AuthHandler for back-office users.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.AdminLoginRequest
	if !decodeJSON(w, r, &loginReq, "Login") {
		return
	}

	tokenResponse, err := a.authService.LoginAdmin(r.Context(), loginReq, sessionFrom(r))
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	slog.Info("User logged in successfully")
	response.Created(w, "User logged in successfully", tokenResponse)
}

// LoginEmployee implements AuthHandler.
func (a *AuthHandlerImpl) LoginEmployee(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.EmployeeLoginRequest
	if !decodeJSON(w, r, &loginReq, "Login employee") {
		return
	}

	tokenResponse, err := a.authService.LoginEmployee(r.Context(), loginReq, sessionFrom(r))
	if err != nil {
		slog.Error("Login employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	slog.Info("Employee logged in successfully", "must_change_password", tokenResponse.MustChangePassword)
	response.Created(w, "Employee logged in successfully", tokenResponse)
}

// ChangeFirstLoginPassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangeFirstLoginPassword(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req auth.FirstLoginPasswordRequest
	if !decodeJSON(w, r, &req, "ChangeFirstLoginPassword") {
		return
	}

	if err := a.authService.ChangeFirstLoginPassword(r.Context(), p, req); err != nil {
		slog.Error("ChangeFirstLoginPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed successfully", nil)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshTokenReq auth.RefreshTokenRequest

	// Cookie first, JSON body as fallback
	refreshTokenCookie, err := r.Cookie("refresh_token")
	if err == nil && refreshTokenCookie.Value != "" {
		refreshTokenReq.RefreshToken = refreshTokenCookie.Value
	} else if !decodeJSON(w, r, &refreshTokenReq, "Refresh Token") {
		return
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshTokenReq)
	if err != nil {
		slog.Error("Refresh Token service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Token refreshed successfully")
	response.Created(w, "Token refreshed successfully", tokenResponse)
}

// Logout implements AuthHandler. Whatever is presented gets revoked: the
// refresh token from the cookie or body and the bearer access token.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshTokenRequest
	if c, err := r.Cookie("refresh_token"); err == nil && c.Value != "" {
		req.RefreshToken = c.Value
	} else if r.ContentLength > 0 && !decodeJSON(w, r, &req, "Logout") {
		return
	}

	if err := a.authService.Logout(r.Context(), req.RefreshToken, jwtauth.TokenFromHeader(r)); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.ClearRefreshTokenCookie())
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}
