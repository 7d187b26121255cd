package payroll

import (
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
	"github.com/shopspring/decimal"
)

// StandardMonthlyHours is the fixed divisor used to derive the hourly
// overtime rate from a monthly base salary. It is a policy constant, not a
// per-call parameter.
const StandardMonthlyHours = 160

type Status string

const (
	StatusDraft     Status = "draft"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

// Period is a payroll month. Month must be in 1..12 and Year positive.
type Period struct {
	Month int
	Year  int
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidPeriod
	}
	if p.Year <= 0 {
		return ErrInvalidPeriod
	}
	return nil
}

// AppliedDeduction is one itemized withholding line on a record. Order is
// significant: lines appear in the order the rules were supplied.
type AppliedDeduction struct {
	Name   string          `json:"name"`
	Kind   deduction.Kind  `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// Record is one processed payroll run for an employee. A record is created
// exactly once per run and never mutated; re-running a period produces a new
// record (or a uniqueness conflict at the persistence layer).
type Record struct {
	ID              string
	EmployeeCode    string
	Month           int
	Year            int
	BaseSalary      decimal.Decimal // snapshot at processing time
	OvertimeHours   decimal.Decimal
	OvertimeRate    decimal.Decimal
	Bonuses         decimal.Decimal
	GrossSalary     decimal.Decimal
	Deductions      []AppliedDeduction
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	Status          Status
	ProcessedAt     *time.Time
	CreatedAt       time.Time
}
