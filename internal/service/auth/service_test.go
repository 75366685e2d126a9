package auth

import (
	"testing"

	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/managely-hr/hr-backend-go/internal/mocks"
	"github.com/managely-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type authFixture struct {
	service   *AuthServiceImpl
	users     *mocks.UserRepository
	employees *mocks.EmployeeRepository
	refresh   *mocks.RefreshTokenRepository
	jwt       jwt.Service
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, nil)
	require.NoError(t, err)

	f := authFixture{
		users:     &mocks.UserRepository{},
		employees: &mocks.EmployeeRepository{},
		refresh:   &mocks.RefreshTokenRepository{},
		jwt:       jwtService,
	}
	f.service = NewAuthService(f.users, f.employees, f.jwt, f.refresh).(*AuthServiceImpl)
	f.service.bcryptCost = bcrypt.MinCost
	return f
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_LoginAdmin_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()
	session := auth.SessionTrackingRequest{UserAgent: "test", IPAddress: "127.0.0.1"}

	f.users.On("GetByUsername", ctx, "admin").Return(user.User{
		ID:           "user-1",
		Username:     "admin",
		PasswordHash: mustHash(t, "password123"),
		Role:         user.RoleAdmin,
	}, nil)
	f.refresh.On("Create", ctx, "user-1", auth.SubjectUser, mock.AnythingOfType("string"), mock.AnythingOfType("int64"), session).Return(nil)

	// Act
	resp, err := f.service.LoginAdmin(ctx, auth.AdminLoginRequest{Username: " admin ", Password: "password123"}, session)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin", resp.Role)
	assert.False(t, resp.MustChangePassword)
	f.refresh.AssertExpectations(t)
}

func TestAuthService_LoginAdmin_InvalidPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()

	f.users.On("GetByUsername", ctx, "admin").Return(user.User{
		ID:           "user-1",
		PasswordHash: mustHash(t, "password123"),
		Role:         user.RoleAdmin,
	}, nil)

	// Act
	_, err := f.service.LoginAdmin(ctx, auth.AdminLoginRequest{Username: "admin", Password: "wrong"}, auth.SessionTrackingRequest{})

	// Assert
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	f.refresh.AssertNotCalled(t, "Create")
}

func TestAuthService_LoginAdmin_UserNotFound(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()

	f.users.On("GetByUsername", ctx, "ghost").Return(user.User{}, user.ErrUserNotFound)

	_, err := f.service.LoginAdmin(ctx, auth.AdminLoginRequest{Username: "ghost", Password: "x"}, auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_LoginAdmin_Validation(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.LoginAdmin(t.Context(), auth.AdminLoginRequest{}, auth.SessionTrackingRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestAuthService_LoginEmployee_FirstLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()

	f.employees.On("GetByEmployeeCode", ctx, "EM2025001").Return(employee.Employee{
		ID:           "emp-1",
		EmployeeCode: "EM2025001",
		FullName:     "Jane Doe",
		PasswordHash: mustHash(t, "345678"),
		FirstLogin:   true,
		IsActive:     true,
	}, nil)
	f.refresh.On("Create", ctx, "emp-1", auth.SubjectEmployee, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// Act
	resp, err := f.service.LoginEmployee(ctx, auth.EmployeeLoginRequest{EmployeeCode: "em2025001", Password: "345678"}, auth.SessionTrackingRequest{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "employee", resp.Role)
	assert.True(t, resp.MustChangePassword)

	verified, err := f.jwt.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	claims, err := verified.AsMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", jwt.StringClaim(claims, "employee_id"))
	assert.Equal(t, jwt.TokenTypeAccess, jwt.StringClaim(claims, "type"))
}

func TestAuthService_LoginEmployee_Inactive(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()

	f.employees.On("GetByEmployeeCode", ctx, "EM2025002").Return(employee.Employee{
		ID:           "emp-2",
		PasswordHash: mustHash(t, "secret1"),
		IsActive:     false,
	}, nil)

	_, err := f.service.LoginEmployee(ctx, auth.EmployeeLoginRequest{EmployeeCode: "EM2025002", Password: "secret1"}, auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestAuthService_LoginEmployee_InvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()

	f.employees.On("GetByEmployeeCode", ctx, "EM2025003").Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	_, err := f.service.LoginEmployee(ctx, auth.EmployeeLoginRequest{EmployeeCode: "EM2025003", Password: "secret1"}, auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_ChangeFirstLoginPassword_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()
	principal := auth.Principal{SubjectID: "emp-1", SubjectType: auth.SubjectEmployee, EmployeeID: "emp-1", Role: user.RoleEmployee}

	f.employees.On("GetByID", ctx, "emp-1").Return(employee.Employee{ID: "emp-1", FirstLogin: true, IsActive: true}, nil)
	f.employees.On("UpdatePassword", ctx, "emp-1", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret")) == nil
	}), false).Return(nil)

	// Act
	err := f.service.ChangeFirstLoginPassword(ctx, principal, auth.FirstLoginPasswordRequest{NewPassword: "newsecret", ConfirmPassword: "newsecret"})

	// Assert
	require.NoError(t, err)
	f.employees.AssertExpectations(t)
}

func TestAuthService_ChangeFirstLoginPassword_AlreadyChanged(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()
	principal := auth.Principal{SubjectID: "emp-1", SubjectType: auth.SubjectEmployee, EmployeeID: "emp-1", Role: user.RoleEmployee}

	f.employees.On("GetByID", ctx, "emp-1").Return(employee.Employee{ID: "emp-1", FirstLogin: false}, nil)

	err := f.service.ChangeFirstLoginPassword(ctx, principal, auth.FirstLoginPasswordRequest{NewPassword: "newsecret", ConfirmPassword: "newsecret"})

	assert.ErrorIs(t, err, auth.ErrPasswordAlreadyChanged)
	f.employees.AssertNotCalled(t, "UpdatePassword")
}

func TestAuthService_ChangeFirstLoginPassword_NotEmployee(t *testing.T) {
	f := newAuthFixture(t)
	principal := auth.Principal{SubjectID: "user-1", SubjectType: auth.SubjectUser, Role: user.RoleAdmin}

	err := f.service.ChangeFirstLoginPassword(t.Context(), principal, auth.FirstLoginPasswordRequest{NewPassword: "newsecret", ConfirmPassword: "newsecret"})

	assert.ErrorIs(t, err, user.ErrEmployeeAccessRequired)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()

	refreshToken, _, err := f.jwt.GenerateRefreshToken("user-1", string(auth.SubjectUser))
	require.NoError(t, err)

	f.refresh.On("Lookup", ctx, refreshToken).Return(auth.RefreshTokenRecord{SubjectID: "user-1", SubjectType: auth.SubjectUser}, nil)
	f.users.On("GetByID", ctx, "user-1").Return(user.User{ID: "user-1", Username: "hr", Role: user.RoleHR}, nil)

	// Act
	resp, err := f.service.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refreshToken})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthService_RefreshToken_Revoked(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()

	refreshToken, _, err := f.jwt.GenerateRefreshToken("user-1", string(auth.SubjectUser))
	require.NoError(t, err)
	f.refresh.On("Lookup", ctx, refreshToken).Return(auth.RefreshTokenRecord{SubjectID: "user-1", SubjectType: auth.SubjectUser, Revoked: true}, nil)

	_, err = f.service.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refreshToken})

	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	f := newAuthFixture(t)

	accessToken, _, err := f.jwt.GenerateAccessToken(jwt.AccessClaims{SubjectID: "user-1", SubjectType: "user", Role: user.RoleAdmin})
	require.NoError(t, err)

	_, err = f.service.RefreshToken(t.Context(), auth.RefreshTokenRequest{RefreshToken: accessToken})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	f.refresh.AssertNotCalled(t, "Lookup")
}

func TestAuthService_RefreshToken_DeactivatedEmployee(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()

	refreshToken, _, err := f.jwt.GenerateRefreshToken("emp-1", string(auth.SubjectEmployee))
	require.NoError(t, err)
	f.refresh.On("Lookup", ctx, refreshToken).Return(auth.RefreshTokenRecord{SubjectID: "emp-1", SubjectType: auth.SubjectEmployee}, nil)
	f.employees.On("GetByID", ctx, "emp-1").Return(employee.Employee{ID: "emp-1", IsActive: false}, nil)

	_, err = f.service.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refreshToken})

	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestAuthService_Logout_RevokesBothTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := t.Context()

	accessToken, _, err := f.jwt.GenerateAccessToken(jwt.AccessClaims{SubjectID: "user-1", SubjectType: "user", Role: user.RoleAdmin})
	require.NoError(t, err)
	f.refresh.On("Revoke", ctx, "refresh-token").Return(nil)

	// Act
	err = f.service.Logout(ctx, "refresh-token", accessToken)

	// Assert
	require.NoError(t, err)
	revoked, err := f.jwt.IsTokenRevoked(ctx, accessToken)
	require.NoError(t, err)
	assert.True(t, revoked)
	f.refresh.AssertExpectations(t)
}

func TestAuthService_EnsureBootstrapAdmin(t *testing.T) {
	t.Run("creates admin on empty database", func(t *testing.T) {
		f := newAuthFixture(t)
		ctx := t.Context()

		f.users.On("ExistsByUsername", ctx, "root").Return(false, nil)
		f.users.On("Create", ctx, mock.MatchedBy(func(u user.User) bool {
			return u.Username == "root" && u.Role == user.RoleAdmin && u.Email != nil && *u.Email == "root@example.com"
		})).Return(user.User{ID: "user-1", Username: "root", Role: user.RoleAdmin}, nil)

		created, err := f.service.EnsureBootstrapAdmin(ctx, auth.BootstrapAdminRequest{
			Username: "root",
			Password: "password123",
			Email:    "root@example.com",
			FullName: "Root",
		})

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("skips when admin exists", func(t *testing.T) {
		f := newAuthFixture(t)
		ctx := t.Context()

		f.users.On("ExistsByUsername", ctx, "root").Return(true, nil)

		created, err := f.service.EnsureBootstrapAdmin(ctx, auth.BootstrapAdminRequest{Username: "root", Password: "password123"})

		require.NoError(t, err)
		assert.False(t, created)
		f.users.AssertNotCalled(t, "Create")
	})
}
