package payroll

import "context"

type PayrollService interface {
	Process(ctx context.Context, req ProcessPayrollRequest) (RecordResponse, error)
	GetByID(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, filter Filter) ([]RecordResponse, error)
	ListByEmployee(ctx context.Context, employeeCode string) ([]RecordResponse, error)
}
