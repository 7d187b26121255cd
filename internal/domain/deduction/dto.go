package deduction

import (
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRuleRequest struct {
	Name         string          `json:"name"`
	Kind         string          `json:"type"` // tax, pf, insurance, other
	Amount       decimal.Decimal `json:"amount"`
	Percentage   decimal.Decimal `json:"percentage"`
	IsPercentage bool            `json:"is_percentage"`
	IsMandatory  *bool           `json:"is_mandatory,omitempty"` // defaults to true
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !ValidKind(r.Kind) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'tax', 'pf', 'insurance' or 'other'"})
	}
	if r.IsPercentage {
		if r.Percentage.IsNegative() || r.Percentage.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{Field: "percentage", Message: "must be between 0 and 100"})
		}
	} else {
		if r.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RuleResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Kind         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Percentage   decimal.Decimal `json:"percentage"`
	IsPercentage bool            `json:"is_percentage"`
	IsMandatory  bool            `json:"is_mandatory"`
}

func ToResponse(rule Rule) RuleResponse {
	return RuleResponse{
		ID:           rule.ID,
		Name:         rule.Name,
		Kind:         string(rule.Kind),
		Amount:       rule.Amount,
		Percentage:   rule.Percentage,
		IsPercentage: rule.IsPercentage,
		IsMandatory:  rule.IsMandatory,
	}
}
