package user

import "time"

type Role string

const (
	RoleAdmin          Role = "admin"           // Full access to every resource
	RolePayrollOfficer Role = "payroll_officer" // Runs payroll, manages employees and reimbursements
	RoleEmployee       Role = "employee"        // Self-scoped access only
)

// ValidRole reports whether s names one of the closed set of roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RolePayrollOfficer, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID              string
	Username        string
	Email           string
	PasswordHash    *string
	Role            Role
	EmployeeCode    *string // Affiliation to an employee record, required for self-scoped actions
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Privileged reports whether the role can act on any employee's data.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RolePayrollOfficer
}
