package middleware

import (
	"net/http"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/user"
	"github.com/finpay-hq/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireOfficer requires payroll officer or admin role
func RequireOfficer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, access.ErrForbidden)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || !user.Role(roleStr).Privileged() {
			response.HandleError(w, access.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
