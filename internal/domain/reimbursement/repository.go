package reimbursement

import "context"

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListAll(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeCode string) ([]Request, error)
	// UpdateStatus transitions a pending request to a terminal status,
	// recording who processed it and when. Non-pending rows are left
	// untouched and reported as ErrAlreadyProcessed.
	UpdateStatus(ctx context.Context, id string, status Status, processedBy string) (Request, error)
	CountPending(ctx context.Context) (int, error)
}
