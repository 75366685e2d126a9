package middleware

import (
	"fmt"
	"net/http"

	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
)

// RequireStaff admits back-office users (admin and hr).
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFrom(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrUnauthenticated)
			return
		}
		if principal.SubjectType != auth.SubjectUser || !principal.Role.IsStaff() {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmployee admits employee principals only.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.PrincipalFrom(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrUnauthenticated)
			return
		}
		if !principal.IsEmployee() {
			response.HandleError(w, user.ErrEmployeeAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePermission checks if user has specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := auth.PrincipalFrom(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrUnauthenticated)
				return
			}

			if !principal.Can(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, principal.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
