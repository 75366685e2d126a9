package auth

import (
	"context"

	"github.com/managely-hr/hr-backend-go/internal/domain/user"
)

type SubjectType string

const (
	SubjectUser     SubjectType = "user"
	SubjectEmployee SubjectType = "employee"
)

// Principal is the authenticated caller, resolved once per request from the
// access token and passed explicitly to the services that need it.
type Principal struct {
	SubjectID   string
	SubjectType SubjectType
	// EmployeeID is set only for employee principals.
	EmployeeID string
	Role       user.Role
	Name       string
}

func (p Principal) IsEmployee() bool {
	return p.SubjectType == SubjectEmployee && p.EmployeeID != ""
}

func (p Principal) Can(permission user.Permission) bool {
	return user.HasPermission(p.Role, permission)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
