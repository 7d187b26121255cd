package payroll

import (
	"context"
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/employee"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.RecordRepository
	employeeRepo employee.EmployeeRepository
	ruleRepo     deduction.RuleRepository
	calculator   *Calculator
}

func NewPayrollService(
	payrollRepo payroll.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	ruleRepo deduction.RuleRepository,
	calculator *Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		ruleRepo:     ruleRepo,
		calculator:   calculator,
	}
}

func (s *PayrollServiceImpl) Process(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.RecordResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourcePayroll, Action: access.ActionCreate}); err != nil {
		return payroll.RecordResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}
	if err := (payroll.Period{Month: req.Month, Year: req.Year}).Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	rules, err := s.ruleRepo.ListAll(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	result := s.calculator.Compute(CalculationInput{
		BaseSalary:    emp.BaseSalary,
		OvertimeHours: req.OvertimeHours,
		Bonuses:       req.Bonuses,
		Rules:         rules,
	})

	now := time.Now()
	record := payroll.Record{
		EmployeeCode:    emp.EmployeeCode,
		Month:           req.Month,
		Year:            req.Year,
		BaseSalary:      emp.BaseSalary,
		OvertimeHours:   req.OvertimeHours,
		OvertimeRate:    result.OvertimeRate,
		Bonuses:         req.Bonuses,
		GrossSalary:     result.GrossSalary,
		Deductions:      result.Deductions,
		TotalDeductions: result.TotalDeductions,
		NetSalary:       result.NetSalary,
		Status:          payroll.StatusProcessed,
		ProcessedAt:     &now,
	}

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return payroll.ToResponse(created), nil
}

func (s *PayrollServiceImpl) GetByID(ctx context.Context, id string) (payroll.RecordResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if !principal.Authenticated {
		return payroll.RecordResponse{}, access.ErrUnauthenticated
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	op := access.Operation{Resource: access.ResourcePayroll, Action: access.ActionRead, TargetEmployeeCode: &record.EmployeeCode}
	if err := access.Check(principal, op); err != nil {
		return payroll.RecordResponse{}, err
	}

	return payroll.ToResponse(record), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.Filter) ([]payroll.RecordResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if !principal.Authenticated {
		return nil, access.ErrUnauthenticated
	}

	// Employees only ever see their own records, so the listing collapses to
	// a self-scoped filter regardless of what was requested.
	if !principal.Role.Privileged() {
		self := principal.SelfCode()
		op := access.Operation{Resource: access.ResourcePayroll, Action: access.ActionList, TargetEmployeeCode: &self}
		if err := access.Check(principal, op); err != nil {
			return nil, err
		}
		filter.EmployeeCode = &self
	}

	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return payroll.ToResponses(records), nil
}

func (s *PayrollServiceImpl) ListByEmployee(ctx context.Context, employeeCode string) ([]payroll.RecordResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	op := access.Operation{Resource: access.ResourcePayroll, Action: access.ActionList, TargetEmployeeCode: &employeeCode}
	if err := access.Check(principal, op); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByEmployee(ctx, employeeCode)
	if err != nil {
		return nil, err
	}

	return payroll.ToResponses(records), nil
}
