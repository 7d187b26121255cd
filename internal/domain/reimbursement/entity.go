package reimbursement

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryTravel  Category = "travel"
	CategoryMedical Category = "medical"
	CategoryFood    Category = "food"
	CategoryOther   Category = "other"
)

// ValidCategory reports whether s names one of the closed set of categories.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryTravel, CategoryMedical, CategoryFood, CategoryOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPaid     Status = "paid"
)

type Request struct {
	ID            string
	EmployeeCode  string
	Category      Category
	Amount        decimal.Decimal
	Description   string
	ReceiptURL    *string
	Status        Status
	SubmittedDate time.Time
	ProcessedDate *time.Time
	ProcessedBy   *string
}

// CanProcess reports whether the request may still transition to a terminal
// status. Only pending requests can, and only once.
func (r *Request) CanProcess() bool {
	return r.Status == StatusPending
}
