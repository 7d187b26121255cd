package reimbursement

import (
	"context"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/reimbursement"
)

type ReimbursementServiceImpl struct {
	requestRepo reimbursement.RequestRepository
}

func NewReimbursementService(requestRepo reimbursement.RequestRepository) reimbursement.ReimbursementService {
	return &ReimbursementServiceImpl{requestRepo: requestRepo}
}

func (s *ReimbursementServiceImpl) Create(ctx context.Context, req reimbursement.CreateRequestRequest) (reimbursement.RequestResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourceReimbursement, Action: access.ActionCreate}); err != nil {
		return reimbursement.RequestResponse{}, err
	}

	// The policy admits the attempt; attribution still needs an affiliation.
	if principal.EmployeeCode == nil {
		return reimbursement.RequestResponse{}, reimbursement.ErrMissingAffiliation
	}

	if err := req.Validate(); err != nil {
		return reimbursement.RequestResponse{}, err
	}

	request := reimbursement.Request{
		EmployeeCode: *principal.EmployeeCode,
		Category:     reimbursement.Category(req.Category),
		Amount:       req.Amount,
		Description:  req.Description,
		ReceiptURL:   req.ReceiptURL,
		Status:       reimbursement.StatusPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return reimbursement.RequestResponse{}, err
	}

	return reimbursement.ToResponse(created), nil
}

func (s *ReimbursementServiceImpl) GetByID(ctx context.Context, id string) (reimbursement.RequestResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if !principal.Authenticated {
		return reimbursement.RequestResponse{}, access.ErrUnauthenticated
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return reimbursement.RequestResponse{}, err
	}

	op := access.Operation{Resource: access.ResourceReimbursement, Action: access.ActionRead, TargetEmployeeCode: &request.EmployeeCode}
	if err := access.Check(principal, op); err != nil {
		return reimbursement.RequestResponse{}, err
	}

	return reimbursement.ToResponse(request), nil
}

func (s *ReimbursementServiceImpl) List(ctx context.Context) ([]reimbursement.RequestResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if !principal.Authenticated {
		return nil, access.ErrUnauthenticated
	}

	// Unprivileged principals see their own requests only.
	if !principal.Role.Privileged() {
		self := principal.SelfCode()
		op := access.Operation{Resource: access.ResourceReimbursement, Action: access.ActionList, TargetEmployeeCode: &self}
		if err := access.Check(principal, op); err != nil {
			return nil, err
		}
		return s.listByEmployee(ctx, self)
	}

	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return reimbursement.ToResponses(requests), nil
}

func (s *ReimbursementServiceImpl) ListByEmployee(ctx context.Context, employeeCode string) ([]reimbursement.RequestResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	op := access.Operation{Resource: access.ResourceReimbursement, Action: access.ActionList, TargetEmployeeCode: &employeeCode}
	if err := access.Check(principal, op); err != nil {
		return nil, err
	}

	return s.listByEmployee(ctx, employeeCode)
}

func (s *ReimbursementServiceImpl) listByEmployee(ctx context.Context, employeeCode string) ([]reimbursement.RequestResponse, error) {
	requests, err := s.requestRepo.ListByEmployee(ctx, employeeCode)
	if err != nil {
		return nil, err
	}
	return reimbursement.ToResponses(requests), nil
}

func (s *ReimbursementServiceImpl) Process(ctx context.Context, id string, req reimbursement.ProcessRequestRequest) (reimbursement.RequestResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourceReimbursement, Action: access.ActionApprove}); err != nil {
		return reimbursement.RequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return reimbursement.RequestResponse{}, err
	}

	updated, err := s.requestRepo.UpdateStatus(ctx, id, reimbursement.Status(req.Status), principal.UserID)
	if err != nil {
		return reimbursement.RequestResponse{}, err
	}

	return reimbursement.ToResponse(updated), nil
}
