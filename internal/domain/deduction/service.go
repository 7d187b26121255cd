package deduction

import "context"

type RuleService interface {
	Create(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)
	ListAll(ctx context.Context) ([]RuleResponse, error)
}
