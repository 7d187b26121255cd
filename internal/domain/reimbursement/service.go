package reimbursement

import "context"

type ReimbursementService interface {
	// Create submits a request on behalf of the acting principal. The request
	// is always attributed to the principal's own employee affiliation;
	// principals without one get ErrMissingAffiliation.
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	GetByID(ctx context.Context, id string) (RequestResponse, error)
	List(ctx context.Context) ([]RequestResponse, error)
	ListByEmployee(ctx context.Context, employeeCode string) ([]RequestResponse, error)
	Process(ctx context.Context, id string, req ProcessRequestRequest) (RequestResponse, error)
}
