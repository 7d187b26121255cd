package access

import "github.com/finpay-hq/payroll-backend-go/internal/domain/user"

// Principal is the authenticated actor every protected operation is
// evaluated against. EmployeeCode carries the optional affiliation to an
// employee record; only that employee may be the target of self-scoped
// operations.
type Principal struct {
	UserID        string
	Role          user.Role
	EmployeeCode  *string
	Authenticated bool
}

// SelfCode returns the principal's employee affiliation, or "" when absent.
func (p Principal) SelfCode() string {
	if p.EmployeeCode == nil {
		return ""
	}
	return *p.EmployeeCode
}

type Resource string

const (
	ResourceEmployee      Resource = "employee"
	ResourcePayroll       Resource = "payroll"
	ResourceDeduction     Resource = "deduction"
	ResourceReimbursement Resource = "reimbursement"
	ResourceAnalytics     Resource = "analytics"
)

type Action string

const (
	ActionRead    Action = "read"
	ActionList    Action = "list"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionApprove Action = "approve"
)

// Operation describes one requested action. TargetEmployeeCode is set when
// the action concerns a specific employee's data; it is nil for collection
// level actions (listing everything, analytics).
type Operation struct {
	Resource           Resource
	Action             Action
	TargetEmployeeCode *string
}

type Effect int

const (
	Deny Effect = iota
	Allow
)

// Authorize decides whether principal may perform op. Rules are evaluated in
// precedence order and the first match wins; anything unmatched is denied.
func Authorize(p Principal, op Operation) Effect {
	if !p.Authenticated {
		return Deny
	}

	switch p.Role {
	case user.RoleAdmin, user.RolePayrollOfficer:
		// Admin and payroll officer are symmetric over every resource
		// currently defined.
		return Allow
	case user.RoleEmployee:
		return authorizeEmployee(p, op)
	}

	return Deny
}

func authorizeEmployee(p Principal, op Operation) Effect {
	self := p.SelfCode()
	targetsSelf := self != "" && op.TargetEmployeeCode != nil && *op.TargetEmployeeCode == self

	switch op.Resource {
	case ResourceEmployee:
		if op.Action == ActionRead && targetsSelf {
			return Allow
		}
	case ResourcePayroll:
		if (op.Action == ActionRead || op.Action == ActionList) && targetsSelf {
			return Allow
		}
	case ResourceReimbursement:
		// Creation is always attributed to the principal's own affiliation;
		// a missing affiliation is surfaced later as a distinct error, so the
		// policy itself allows the attempt.
		if op.Action == ActionCreate {
			return Allow
		}
		if (op.Action == ActionRead || op.Action == ActionList) && targetsSelf {
			return Allow
		}
	}

	return Deny
}

// Check maps Authorize onto the error kinds services return: nil on allow,
// ErrUnauthenticated for anonymous principals, ErrForbidden otherwise.
func Check(p Principal, op Operation) error {
	if !p.Authenticated {
		return ErrUnauthenticated
	}
	if Authorize(p, op) == Deny {
		return ErrForbidden
	}
	return nil
}
