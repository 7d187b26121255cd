package payroll

import "context"

type RecordRepository interface {
	// Create persists a record. The (employee_code, month, year) uniqueness
	// constraint lives here, not in the calculator; violations surface as
	// ErrRecordExists.
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter Filter) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeCode string) ([]Record, error)
	// ListProcessedByPeriod returns the processed records of one period, used
	// by the analytics aggregation.
	ListProcessedByPeriod(ctx context.Context, month, year int) ([]Record, error)
}
