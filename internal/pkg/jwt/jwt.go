package jwt

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AccessClaims is the identity embedded in an access token.
type AccessClaims struct {
	SubjectID   string
	SubjectType string
	EmployeeID  *string
	Role        user.Role
	Name        string
}

type Service interface {
	GenerateAccessToken(claims AccessClaims) (token string, expiresAt int64, err error)
	GenerateRefreshToken(subjectID string, subjectType string) (token string, expiresAt int64, err error)
	ParseRefreshToken(token string) (subjectID string, subjectType string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	ClearRefreshTokenCookie() *http.Cookie
	RevokeToken(ctx context.Context, token string) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

type JWTService struct {
	accessTTL  time.Duration
	refreshTTL time.Duration
	tokenAuth  *jwtauth.JWTAuth
	revoked    RevocationStore
	now        func() time.Time
}

// NewJWTService parses the expiration durations up front; config.Validate has
// already rejected malformed values.
func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string, revoked RevocationStore) (Service, error) {
	accessTTL, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := time.ParseDuration(refreshTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	if revoked == nil {
		revoked = NewMemoryRevocationStore()
	}

	return &JWTService{
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revoked:    revoked,
		now:        time.Now,
	}, nil
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(c AccessClaims) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTTL).Unix()

	claims := map[string]interface{}{
		"sub":          c.SubjectID,
		"subject_type": c.SubjectType,
		"employee_id":  returnValueOrNil(c.EmployeeID),
		"role":         string(c.Role),
		"name":         c.Name,
		"type":         TokenTypeAccess,
		"exp":          expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(subjectID string, subjectType string) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.refreshTTL).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":          subjectID,
		"subject_type": subjectType,
		"exp":          expiresAt,
		"type":         TokenTypeRefresh,
	})
	return tokenString, expiresAt, err
}

// ParseRefreshToken verifies the signature and expiry of a refresh token and
// returns its subject. Revocation is checked against the database by the caller.
func (j *JWTService) ParseRefreshToken(tokenString string) (subjectID string, subjectType string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", "", err
	}

	if typ, ok := token.Get("type"); !ok || typ != TokenTypeRefresh {
		return "", "", jwt.ErrInvalidJWT()
	}

	subjectType, _ = stringClaim(token, "subject_type")
	if token.Subject() == "" || subjectType == "" {
		return "", "", jwt.ErrInvalidJWT()
	}
	return token.Subject(), subjectType, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearRefreshTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// RevokeToken blacklists an access token until it would have expired anyway.
func (j *JWTService) RevokeToken(ctx context.Context, tokenString string) error {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		// Invalid or already expired, nothing to revoke.
		return nil
	}

	ttl := token.Expiration().Sub(j.now())
	if ttl <= 0 {
		return nil
	}
	return j.revoked.Revoke(ctx, tokenString, ttl)
}

func (j *JWTService) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	return j.revoked.IsRevoked(ctx, token)
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func stringClaim(token jwt.Token, key string) (string, bool) {
	v, ok := token.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// StringClaim reads a string claim from a verified token map.
func StringClaim(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}
