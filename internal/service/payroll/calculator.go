package payroll

import (
	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// CalculationInput carries everything a single payroll computation needs.
// Rules are applied in slice order.
type CalculationInput struct {
	BaseSalary    decimal.Decimal
	OvertimeHours decimal.Decimal
	Bonuses       decimal.Decimal
	Rules         []deduction.Rule
}

type CalculationResult struct {
	OvertimeRate    decimal.Decimal
	OvertimePay     decimal.Decimal
	GrossSalary     decimal.Decimal
	Deductions      []payroll.AppliedDeduction
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// Calculator derives a payroll breakdown from salary inputs and deduction
// rules. It touches no storage and keeps no state, so one instance is shared
// across every processing run.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

var hundred = decimal.NewFromInt(100)

// Compute applies the payroll formula:
//
//	overtime_rate = base_salary / 160
//	gross         = base_salary + overtime_rate*overtime_hours + bonuses
//	net           = gross - sum(deductions)
//
// Every rule is applied, in order, whether or not it is marked mandatory.
// Percentage rules always draw on the full gross, so later rules never see a
// reduced base. Net salary is reported as computed, including negative values
// when deductions exceed gross.
func (c *Calculator) Compute(in CalculationInput) CalculationResult {
	overtimeRate := in.BaseSalary.Div(decimal.NewFromInt(payroll.StandardMonthlyHours))
	overtimePay := overtimeRate.Mul(in.OvertimeHours)
	gross := in.BaseSalary.Add(overtimePay).Add(in.Bonuses)

	applied := make([]payroll.AppliedDeduction, 0, len(in.Rules))
	total := decimal.Zero
	for _, rule := range in.Rules {
		var amount decimal.Decimal
		if rule.IsPercentage {
			amount = gross.Mul(rule.Percentage).Div(hundred)
		} else {
			amount = rule.Amount
		}
		applied = append(applied, payroll.AppliedDeduction{
			Name:   rule.Name,
			Kind:   rule.Kind,
			Amount: amount,
		})
		total = total.Add(amount)
	}

	return CalculationResult{
		OvertimeRate:    overtimeRate,
		OvertimePay:     overtimePay,
		GrossSalary:     gross,
		Deductions:      applied,
		TotalDeductions: total,
		NetSalary:       gross.Sub(total),
	}
}
