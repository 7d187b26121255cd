package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByCode(ctx context.Context, code string) (EmployeeResponse, error)
	ListActive(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, code string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, code string) error
}
