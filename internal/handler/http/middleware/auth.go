package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/managely-hr/hr-backend-go/internal/handler/http/response"
	"github.com/managely-hr/hr-backend-go/internal/pkg/jwt"
)

// AuthRequired accepts verified, unrevoked access tokens and stores the
// caller as an auth.Principal on the request context. It must run after
// jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwt.StringClaim(claims, "type") != jwt.TokenTypeAccess {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			revoked, err := jwtService.IsTokenRevoked(r.Context(), jwtauth.TokenFromHeader(r))
			if err != nil {
				slog.Error("failed to check token revocation", "error", err)
				response.InternalServerError(w, "Failed to verify token")
				return
			}
			if revoked {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			principal := auth.Principal{
				SubjectID:   token.Subject(),
				SubjectType: auth.SubjectType(jwt.StringClaim(claims, "subject_type")),
				EmployeeID:  jwt.StringClaim(claims, "employee_id"),
				Role:        user.Role(jwt.StringClaim(claims, "role")),
				Name:        jwt.StringClaim(claims, "name"),
			}
			if principal.SubjectID == "" || principal.Role == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		}
		return http.HandlerFunc(hfn)
	}
}
