package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin_SetsRefreshCookie(t *testing.T) {
	s := newTestServer(t)

	s.auth.On("LoginAdmin", mock.Anything,
		auth.AdminLoginRequest{Username: "admin", Password: "s3cret!"},
		mock.AnythingOfType("auth.SessionTrackingRequest"),
	).Return(auth.TokenResponse{
		AccessToken:           "access",
		RefreshToken:          "refresh",
		RefreshTokenExpiresIn: 4102444800,
		Role:                  "admin",
	}, nil)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "s3cret!",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `"access"`, string(decodeField(t, env.Data, "access_token")))

	var refresh *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			refresh = c
		}
	}
	require.NotNil(t, refresh)
	assert.Equal(t, "refresh", refresh.Value)
	assert.True(t, refresh.HttpOnly)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)

	s.auth.On("LoginAdmin", mock.Anything, mock.Anything, mock.Anything).
		Return(auth.TokenResponse{}, auth.ErrInvalidCredentials)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestLogin_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	s.auth.AssertNotCalled(t, "LoginAdmin", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginEmployee_ReportsPasswordChange(t *testing.T) {
	s := newTestServer(t)

	s.auth.On("LoginEmployee", mock.Anything,
		auth.EmployeeLoginRequest{EmployeeCode: "EM2026001", Password: "543210"},
		mock.Anything,
	).Return(auth.TokenResponse{AccessToken: "a", RefreshToken: "r", Role: "employee", MustChangePassword: true}, nil)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login/employee", "", map[string]string{
		"employee_code": "EM2026001",
		"password":      "543210",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `true`, string(decodeField(t, env.Data, "must_change_password")))
}

func TestRefreshToken_PrefersCookie(t *testing.T) {
	s := newTestServer(t)

	s.auth.On("RefreshToken", mock.Anything, auth.RefreshTokenRequest{RefreshToken: "from-cookie"}).
		Return(auth.AccessTokenResponse{AccessToken: "new-access"}, nil)

	req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/refresh", `{"refresh_token":"from-body"}`)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "from-cookie"})
	rec := s.serve(req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogout_RevokesPresentedTokens(t *testing.T) {
	s := newTestServer(t)
	access := s.employeeToken(t)

	s.auth.On("Logout", mock.Anything, "refresh-1", access).Return(nil)

	req := newJSONRequest(t, http.MethodPost, "/api/v1/auth/logout", "")
	req.Header.Set("Authorization", "Bearer "+access)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "refresh-1"})
	rec := s.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestChangeFirstLoginPassword_UsesPrincipal(t *testing.T) {
	s := newTestServer(t)

	s.auth.On("ChangeFirstLoginPassword", mock.Anything,
		mock.MatchedBy(func(p auth.Principal) bool {
			return p.EmployeeID == testEmployeeID && p.SubjectType == auth.SubjectEmployee
		}),
		auth.FirstLoginPasswordRequest{NewPassword: "longer-password", ConfirmPassword: "longer-password"},
	).Return(nil)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/first-login/password", s.employeeToken(t),
		map[string]string{"new_password": "longer-password", "confirm_password": "longer-password"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangeFirstLoginPassword_RejectsStaff(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/first-login/password", s.staffToken(t, user.RoleAdmin),
		map[string]string{"new_password": "longer-password"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/attendance/today", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/attendance/today", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token used as access token", func(t *testing.T) {
		refresh, _, err := s.jwt.GenerateRefreshToken(testEmployeeID, "employee")
		require.NoError(t, err)

		rec := s.do(t, http.MethodGet, "/api/v1/attendance/today", refresh, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		token := s.employeeToken(t)
		require.NoError(t, s.jwt.RevokeToken(context.Background(), token))

		rec := s.do(t, http.MethodGet, "/api/v1/attendance/today", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRoleGates(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{"employee on back office", http.MethodGet, "/api/v1/admin/dashboard", s.employeeToken(t)},
		{"admin on self service", http.MethodGet, "/api/v1/attendance/today", s.staffToken(t, user.RoleAdmin)},
		{"hr on payroll", http.MethodGet, "/api/v1/admin/payroll", s.staffToken(t, user.RoleHR)},
		{"hr on projects", http.MethodPost, "/api/v1/admin/projects", s.staffToken(t, user.RoleHR)},
		{"hr on performance", http.MethodGet, "/api/v1/admin/performance", s.staffToken(t, user.RoleHR)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, tc.method, tc.path, tc.token, nil)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "FORBIDDEN", env.Error.Code)
		})
	}
}
