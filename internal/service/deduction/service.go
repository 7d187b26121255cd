package deduction

import (
	"context"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
)

type RuleServiceImpl struct {
	ruleRepo deduction.RuleRepository
}

func NewRuleService(ruleRepo deduction.RuleRepository) deduction.RuleService {
	return &RuleServiceImpl{ruleRepo: ruleRepo}
}

func (s *RuleServiceImpl) Create(ctx context.Context, req deduction.CreateRuleRequest) (deduction.RuleResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourceDeduction, Action: access.ActionCreate}); err != nil {
		return deduction.RuleResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return deduction.RuleResponse{}, err
	}

	isMandatory := true
	if req.IsMandatory != nil {
		isMandatory = *req.IsMandatory
	}

	rule := deduction.Rule{
		Name:         req.Name,
		Kind:         deduction.Kind(req.Kind),
		Amount:       req.Amount,
		Percentage:   req.Percentage,
		IsPercentage: req.IsPercentage,
		IsMandatory:  isMandatory,
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		return deduction.RuleResponse{}, err
	}

	return deduction.ToResponse(created), nil
}

func (s *RuleServiceImpl) ListAll(ctx context.Context) ([]deduction.RuleResponse, error) {
	principal := access.PrincipalFromContext(ctx)
	if err := access.Check(principal, access.Operation{Resource: access.ResourceDeduction, Action: access.ActionList}); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]deduction.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, deduction.ToResponse(rule))
	}
	return responses, nil
}
