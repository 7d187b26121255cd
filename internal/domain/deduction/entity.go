package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindTax       Kind = "tax"
	KindPF        Kind = "pf"
	KindInsurance Kind = "insurance"
	KindOther     Kind = "other"
)

// ValidKind reports whether s names one of the closed set of kinds.
func ValidKind(s string) bool {
	switch Kind(s) {
	case KindTax, KindPF, KindInsurance, KindOther:
		return true
	}
	return false
}

// Rule is one withholding policy. Exactly one of Amount and Percentage is
// semantically active, selected by IsPercentage.
type Rule struct {
	ID           string
	Name         string
	Kind         Kind
	Amount       decimal.Decimal
	Percentage   decimal.Decimal
	IsPercentage bool
	IsMandatory  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
