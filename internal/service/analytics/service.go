package analytics

import (
	"context"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/analytics"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/employee"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/reimbursement"
	"github.com/shopspring/decimal"
)

type AnalyticsServiceImpl struct {
	payrollRepo       payroll.RecordRepository
	employeeRepo      employee.EmployeeRepository
	reimbursementRepo reimbursement.RequestRepository
}

func NewAnalyticsService(
	payrollRepo payroll.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	reimbursementRepo reimbursement.RequestRepository,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		payrollRepo:       payrollRepo,
		employeeRepo:      employeeRepo,
		reimbursementRepo: reimbursementRepo,
	}
}

func (s *AnalyticsServiceImpl) Dashboard(ctx context.Context, month, year int) (analytics.DashboardResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourceAnalytics, Action: access.ActionRead}); err != nil {
		return analytics.DashboardResponse{}, err
	}

	if err := (payroll.Period{Month: month, Year: year}).Validate(); err != nil {
		return analytics.DashboardResponse{}, err
	}

	totalEmployees, err := s.employeeRepo.CountActive(ctx)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}

	pendingReimbursements, err := s.reimbursementRepo.CountPending(ctx)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}

	records, err := s.payrollRepo.ListProcessedByPeriod(ctx, month, year)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}

	cost := decimal.Zero
	breakdown := make(map[string]decimal.Decimal)
	for _, rec := range records {
		cost = cost.Add(rec.NetSalary)
		for _, d := range rec.Deductions {
			breakdown[string(d.Kind)] = breakdown[string(d.Kind)].Add(d.Amount)
		}
	}

	return analytics.DashboardResponse{
		Month:                 month,
		Year:                  year,
		TotalEmployees:        totalEmployees,
		MonthlyPayrollCost:    cost,
		ProcessedPayrolls:     len(records),
		PendingReimbursements: pendingReimbursements,
		DeductionsBreakdown:   breakdown,
	}, nil
}
