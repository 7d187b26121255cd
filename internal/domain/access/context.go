package access

import (
	"context"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// PrincipalFromContext builds the acting principal from the verified JWT
// claims the auth middleware placed on the request context. A context without
// valid claims yields an unauthenticated principal, which the policy denies
// for every protected operation.
func PrincipalFromContext(ctx context.Context) Principal {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}
	}

	userID, _ := claims["user_id"].(string)
	roleStr, ok := claims["role"].(string)
	if userID == "" || !ok || !user.ValidRole(roleStr) {
		return Principal{}
	}

	p := Principal{
		UserID:        userID,
		Role:          user.Role(roleStr),
		Authenticated: true,
	}
	if code, ok := claims["employee_id"].(string); ok && code != "" {
		p.EmployeeCode = &code
	}
	return p
}
