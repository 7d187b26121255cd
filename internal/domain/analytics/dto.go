package analytics

import "github.com/shopspring/decimal"

// DashboardResponse aggregates the figures shown on the admin dashboard for
// a single payroll period.
type DashboardResponse struct {
	Month                 int                        `json:"month"`
	Year                  int                        `json:"year"`
	TotalEmployees        int                        `json:"total_employees"`
	MonthlyPayrollCost    decimal.Decimal            `json:"monthly_payroll_cost"`
	ProcessedPayrolls     int                        `json:"processed_payrolls"`
	PendingReimbursements int                        `json:"pending_reimbursements"`
	DeductionsBreakdown   map[string]decimal.Decimal `json:"deductions_breakdown"`
}
