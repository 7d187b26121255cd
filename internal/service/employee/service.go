package employee

import (
	"context"
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourceEmployee, Action: access.ActionCreate}); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joiningDate := time.Now()
	if req.JoiningDate != "" {
		// Format already validated above.
		joiningDate, _ = time.Parse("2006-01-02", req.JoiningDate)
	}

	emp := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Department:   req.Department,
		Position:     req.Position,
		JoiningDate:  joiningDate,
		BaseSalary:   req.BaseSalary,
		BankAccount:  req.BankAccount,
		TaxID:        req.TaxID,
		Address:      req.Address,
		Status:       employee.StatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByCode(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	op := access.Operation{Resource: access.ResourceEmployee, Action: access.ActionRead, TargetEmployeeCode: &code}
	if err := access.Check(principal, op); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourceEmployee, Action: access.ActionList}); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, code string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourceEmployee, Action: access.ActionUpdate, TargetEmployeeCode: &code}); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.BankAccount != nil {
		emp.BankAccount = *req.BankAccount
	}
	if req.TaxID != nil {
		emp.TaxID = *req.TaxID
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, code string) error {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourceEmployee, Action: access.ActionUpdate, TargetEmployeeCode: &code}); err != nil {
		return err
	}

	return s.employeeRepo.UpdateStatus(ctx, code, employee.StatusInactive)
}
