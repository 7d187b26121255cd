package payroll

import (
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ProcessPayrollRequest struct {
	EmployeeCode  string          `json:"employee_id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Bonuses       decimal.Decimal `json:"bonuses"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	// Month and year bounds are the period's own invariant, checked separately
	// so period violations surface as ErrInvalidPeriod.
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonuses", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeCode *string
	Month        *int
	Year         *int
	Status       *string
}

type RecordResponse struct {
	ID              string             `json:"id"`
	EmployeeCode    string             `json:"employee_id"`
	Month           int                `json:"month"`
	Year            int                `json:"year"`
	BaseSalary      decimal.Decimal    `json:"base_salary"`
	OvertimeHours   decimal.Decimal    `json:"overtime_hours"`
	OvertimeRate    decimal.Decimal    `json:"overtime_rate"`
	Bonuses         decimal.Decimal    `json:"bonuses"`
	GrossSalary     decimal.Decimal    `json:"gross_salary"`
	Deductions      []AppliedDeduction `json:"deductions"`
	TotalDeductions decimal.Decimal    `json:"total_deductions"`
	NetSalary       decimal.Decimal    `json:"net_salary"`
	Status          string             `json:"status"`
	ProcessedAt     *string            `json:"processed_date,omitempty"`
}

func ToResponse(r Record) RecordResponse {
	var processedAtStr *string
	if r.ProcessedAt != nil {
		str := r.ProcessedAt.Format(time.RFC3339)
		processedAtStr = &str
	}

	deductions := r.Deductions
	if deductions == nil {
		deductions = []AppliedDeduction{}
	}

	return RecordResponse{
		ID:              r.ID,
		EmployeeCode:    r.EmployeeCode,
		Month:           r.Month,
		Year:            r.Year,
		BaseSalary:      r.BaseSalary,
		OvertimeHours:   r.OvertimeHours,
		OvertimeRate:    r.OvertimeRate,
		Bonuses:         r.Bonuses,
		GrossSalary:     r.GrossSalary,
		Deductions:      deductions,
		TotalDeductions: r.TotalDeductions,
		NetSalary:       r.NetSalary,
		Status:          string(r.Status),
		ProcessedAt:     processedAtStr,
	}
}

func ToResponses(records []Record) []RecordResponse {
	result := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
