package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/employee"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/reimbursement"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	active int
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (s *stubEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (s *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (s *stubEmployeeRepo) UpdateStatus(ctx context.Context, code string, status employee.Status) error {
	return nil
}
func (s *stubEmployeeRepo) CountActive(ctx context.Context) (int, error) {
	return s.active, nil
}

type stubReimbursementRepo struct {
	pending int
}

func (s *stubReimbursementRepo) Create(ctx context.Context, req reimbursement.Request) (reimbursement.Request, error) {
	return req, nil
}
func (s *stubReimbursementRepo) GetByID(ctx context.Context, id string) (reimbursement.Request, error) {
	return reimbursement.Request{}, reimbursement.ErrRequestNotFound
}
func (s *stubReimbursementRepo) ListAll(ctx context.Context) ([]reimbursement.Request, error) {
	return nil, nil
}
func (s *stubReimbursementRepo) ListByEmployee(ctx context.Context, employeeCode string) ([]reimbursement.Request, error) {
	return nil, nil
}
func (s *stubReimbursementRepo) UpdateStatus(ctx context.Context, id string, status reimbursement.Status, processedBy string) (reimbursement.Request, error) {
	return reimbursement.Request{}, reimbursement.ErrRequestNotFound
}
func (s *stubReimbursementRepo) CountPending(ctx context.Context) (int, error) {
	return s.pending, nil
}

type stubPayrollRepo struct {
	processed []payroll.Record
}

func (s *stubPayrollRepo) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	return record, nil
}
func (s *stubPayrollRepo) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	return payroll.Record{}, payroll.ErrRecordNotFound
}
func (s *stubPayrollRepo) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	return nil, nil
}
func (s *stubPayrollRepo) ListByEmployee(ctx context.Context, employeeCode string) ([]payroll.Record, error) {
	return nil, nil
}
func (s *stubPayrollRepo) ListProcessedByPeriod(ctx context.Context, month, year int) ([]payroll.Record, error) {
	return s.processed, nil
}

func officerContext(t *testing.T) context.Context {
	t.Helper()

	ta := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ta.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    "payroll_officer",
		"type":    "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	now := time.Now()
	records := []payroll.Record{
		{
			EmployeeCode: "EMP001", Month: 3, Year: 2025,
			NetSalary: decimal.NewFromInt(3784),
			Deductions: []payroll.AppliedDeduction{
				{Name: "Income Tax", Kind: deduction.KindTax, Amount: decimal.NewFromInt(1166)},
				{Name: "Health Insurance", Kind: deduction.KindInsurance, Amount: decimal.NewFromInt(350)},
			},
			Status: payroll.StatusProcessed, ProcessedAt: &now,
		},
		{
			EmployeeCode: "EMP002", Month: 3, Year: 2025,
			NetSalary: decimal.NewFromInt(3000),
			Deductions: []payroll.AppliedDeduction{
				{Name: "Income Tax", Kind: deduction.KindTax, Amount: decimal.NewFromInt(880)},
			},
			Status: payroll.StatusProcessed, ProcessedAt: &now,
		},
	}

	svc := NewAnalyticsService(
		&stubPayrollRepo{processed: records},
		&stubEmployeeRepo{active: 5},
		&stubReimbursementRepo{pending: 3},
	)

	t.Run("aggregates the period", func(t *testing.T) {
		result, err := svc.Dashboard(officerContext(t), 3, 2025)
		require.NoError(t, err)

		assert.Equal(t, 5, result.TotalEmployees)
		assert.Equal(t, 3, result.PendingReimbursements)
		assert.Equal(t, 2, result.ProcessedPayrolls)
		assert.True(t, decimal.NewFromInt(6784).Equal(result.MonthlyPayrollCost), "cost: %s", result.MonthlyPayrollCost)
		assert.True(t, decimal.NewFromInt(2046).Equal(result.DeductionsBreakdown["tax"]))
		assert.True(t, decimal.NewFromInt(350).Equal(result.DeductionsBreakdown["insurance"]))
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := svc.Dashboard(officerContext(t), 13, 2025)
		assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := svc.Dashboard(context.Background(), 3, 2025)
		assert.ErrorIs(t, err, access.ErrUnauthenticated)
	})
}
