package access

import (
	"testing"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestAuthorize(t *testing.T) {
	selfCode := "EMP001"
	otherCode := "EMP002"

	anonymous := Principal{}
	admin := Principal{UserID: "u1", Role: user.RoleAdmin, Authenticated: true}
	officer := Principal{UserID: "u2", Role: user.RolePayrollOfficer, Authenticated: true}
	emp := Principal{UserID: "u3", Role: user.RoleEmployee, EmployeeCode: &selfCode, Authenticated: true}
	unaffiliated := Principal{UserID: "u4", Role: user.RoleEmployee, Authenticated: true}

	tests := []struct {
		name      string
		principal Principal
		op        Operation
		want      Effect
	}{
		{"unauthenticated is denied everything", anonymous, Operation{Resource: ResourceEmployee, Action: ActionRead, TargetEmployeeCode: strPtr("EMP001")}, Deny},
		{"unauthenticated denied even reimbursement create", anonymous, Operation{Resource: ResourceReimbursement, Action: ActionCreate}, Deny},

		{"admin reads any employee", admin, Operation{Resource: ResourceEmployee, Action: ActionRead, TargetEmployeeCode: &otherCode}, Allow},
		{"admin processes payroll", admin, Operation{Resource: ResourcePayroll, Action: ActionCreate}, Allow},
		{"admin reads analytics", admin, Operation{Resource: ResourceAnalytics, Action: ActionRead}, Allow},

		{"officer mirrors admin on employees", officer, Operation{Resource: ResourceEmployee, Action: ActionUpdate, TargetEmployeeCode: &otherCode}, Allow},
		{"officer mirrors admin on deductions", officer, Operation{Resource: ResourceDeduction, Action: ActionCreate}, Allow},
		{"officer approves reimbursements", officer, Operation{Resource: ResourceReimbursement, Action: ActionApprove}, Allow},

		{"employee reads own record", emp, Operation{Resource: ResourceEmployee, Action: ActionRead, TargetEmployeeCode: &selfCode}, Allow},
		{"employee cannot read another employee", emp, Operation{Resource: ResourceEmployee, Action: ActionRead, TargetEmployeeCode: &otherCode}, Deny},
		{"employee lists own payroll", emp, Operation{Resource: ResourcePayroll, Action: ActionList, TargetEmployeeCode: &selfCode}, Allow},
		{"employee cannot list another employee's payroll", emp, Operation{Resource: ResourcePayroll, Action: ActionList, TargetEmployeeCode: &otherCode}, Deny},
		{"employee cannot process payroll", emp, Operation{Resource: ResourcePayroll, Action: ActionCreate}, Deny},
		{"employee cannot list all payroll", emp, Operation{Resource: ResourcePayroll, Action: ActionList}, Deny},
		{"employee creates reimbursement", emp, Operation{Resource: ResourceReimbursement, Action: ActionCreate}, Allow},
		{"employee reads own reimbursement", emp, Operation{Resource: ResourceReimbursement, Action: ActionRead, TargetEmployeeCode: &selfCode}, Allow},
		{"employee cannot approve reimbursements", emp, Operation{Resource: ResourceReimbursement, Action: ActionApprove}, Deny},
		{"employee cannot create deduction rules", emp, Operation{Resource: ResourceDeduction, Action: ActionCreate}, Deny},
		{"employee cannot read analytics", emp, Operation{Resource: ResourceAnalytics, Action: ActionRead}, Deny},

		{"unaffiliated employee may still attempt reimbursement create", unaffiliated, Operation{Resource: ResourceReimbursement, Action: ActionCreate}, Allow},
		{"unaffiliated employee cannot self-read", unaffiliated, Operation{Resource: ResourceEmployee, Action: ActionRead, TargetEmployeeCode: &selfCode}, Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.principal, tt.op))
		})
	}
}

func TestCheck(t *testing.T) {
	code := "EMP001"
	emp := Principal{UserID: "u1", Role: user.RoleEmployee, EmployeeCode: &code, Authenticated: true}

	t.Run("anonymous principal", func(t *testing.T) {
		err := Check(Principal{}, Operation{Resource: ResourceEmployee, Action: ActionRead})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("denied principal", func(t *testing.T) {
		err := Check(emp, Operation{Resource: ResourceAnalytics, Action: ActionRead})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("allowed principal", func(t *testing.T) {
		err := Check(emp, Operation{Resource: ResourceEmployee, Action: ActionRead, TargetEmployeeCode: &code})
		assert.NoError(t, err)
	})
}
