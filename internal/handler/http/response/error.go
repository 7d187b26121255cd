package response

import (
	"errors"
	"net/http"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/auth"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/employee"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/reimbursement"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/user"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Access policy errors
	case errors.Is(err, access.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, access.ErrForbidden):
		Forbidden(w, "Insufficient permissions")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)
	case errors.Is(err, auth.ErrOAuthNotEnabled):
		NotFound(w, "Google login is not configured")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Deduction domain errors
	case errors.Is(err, deduction.ErrRuleNotFound):
		NotFound(w, "Deduction rule not found")
	case errors.Is(err, deduction.ErrRuleNameExists):
		Conflict(w, "Deduction rule name already exists")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordExists):
		Conflict(w, "Payroll already processed for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Reimbursement domain errors
	case errors.Is(err, reimbursement.ErrRequestNotFound):
		NotFound(w, "Reimbursement request not found")
	case errors.Is(err, reimbursement.ErrAlreadyProcessed):
		Conflict(w, "Reimbursement request already processed")
	case errors.Is(err, reimbursement.ErrMissingAffiliation):
		BadRequest(w, "Account is not linked to an employee record", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
