package employee

import (
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	PhoneNumber  string          `json:"phone"`
	Department   string          `json:"department"`
	Position     string          `json:"position"`
	JoiningDate  string          `json:"joining_date"` // YYYY-MM-DD
	BaseSalary   decimal.Decimal `json:"base_salary"`
	BankAccount  string          `json:"bank_account"`
	TaxID        string          `json:"tax_id"`
	Address      string          `json:"address"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be an upper-case prefix followed by digits, like EMP001"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.JoiningDate != "" {
		if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FirstName   *string          `json:"first_name,omitempty"`
	LastName    *string          `json:"last_name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	PhoneNumber *string          `json:"phone,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Position    *string          `json:"position,omitempty"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	BankAccount *string          `json:"bank_account,omitempty"`
	TaxID       *string          `json:"tax_id,omitempty"`
	Address     *string          `json:"address,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.Status != nil && !ValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active', 'inactive' or 'terminated'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	PhoneNumber  string          `json:"phone"`
	Department   string          `json:"department"`
	Position     string          `json:"position"`
	JoiningDate  string          `json:"joining_date"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	BankAccount  string          `json:"bank_account"`
	TaxID        string          `json:"tax_id"`
	Address      string          `json:"address"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		PhoneNumber:  emp.PhoneNumber,
		Department:   emp.Department,
		Position:     emp.Position,
		JoiningDate:  emp.JoiningDate.Format("2006-01-02"),
		BaseSalary:   emp.BaseSalary,
		BankAccount:  emp.BankAccount,
		TaxID:        emp.TaxID,
		Address:      emp.Address,
		Status:       string(emp.Status),
		CreatedAt:    emp.CreatedAt.Format(time.RFC3339),
	}
}
