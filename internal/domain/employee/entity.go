package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

// ValidStatus reports whether s names one of the closed set of statuses.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusTerminated:
		return true
	}
	return false
}

type Employee struct {
	ID           string
	EmployeeCode string // Unique, immutable business key
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Department   string
	Position     string
	JoiningDate  time.Time
	BaseSalary   decimal.Decimal
	BankAccount  string
	TaxID        string
	Address      string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
