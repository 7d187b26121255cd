package deduction

import "context"

type RuleRepository interface {
	Create(ctx context.Context, rule Rule) (Rule, error)
	// ListAll returns every rule in creation order. The payroll calculator
	// applies them in exactly this order.
	ListAll(ctx context.Context) ([]Rule, error)
}
