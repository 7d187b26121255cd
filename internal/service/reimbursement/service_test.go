package reimbursement

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/reimbursement"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestRepo struct {
	requests []reimbursement.Request
}

func (f *fakeRequestRepo) Create(ctx context.Context, req reimbursement.Request) (reimbursement.Request, error) {
	req.ID = fmt.Sprintf("rmb-%d", len(f.requests)+1)
	req.SubmittedDate = time.Now()
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (reimbursement.Request, error) {
	for _, req := range f.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return reimbursement.Request{}, reimbursement.ErrRequestNotFound
}

func (f *fakeRequestRepo) ListAll(ctx context.Context) ([]reimbursement.Request, error) {
	return f.requests, nil
}

func (f *fakeRequestRepo) ListByEmployee(ctx context.Context, employeeCode string) ([]reimbursement.Request, error) {
	var out []reimbursement.Request
	for _, req := range f.requests {
		if req.EmployeeCode == employeeCode {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status reimbursement.Status, processedBy string) (reimbursement.Request, error) {
	for i, req := range f.requests {
		if req.ID != id {
			continue
		}
		if !req.CanProcess() {
			return reimbursement.Request{}, reimbursement.ErrAlreadyProcessed
		}
		now := time.Now()
		req.Status = status
		req.ProcessedDate = &now
		req.ProcessedBy = &processedBy
		f.requests[i] = req
		return req, nil
	}
	return reimbursement.Request{}, reimbursement.ErrRequestNotFound
}

func (f *fakeRequestRepo) CountPending(ctx context.Context) (int, error) {
	count := 0
	for _, req := range f.requests {
		if req.Status == reimbursement.StatusPending {
			count++
		}
	}
	return count, nil
}

func authedContext(t *testing.T, role string, employeeCode string) context.Context {
	t.Helper()

	ta := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id":  "user-1",
		"username": "tester",
		"role":     role,
		"type":     "access",
	}
	if employeeCode != "" {
		claims["employee_id"] = employeeCode
	}
	token, _, err := ta.Encode(claims)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func validRequest() reimbursement.CreateRequestRequest {
	return reimbursement.CreateRequestRequest{
		Category:    "travel",
		Amount:      decimal.NewFromInt(120),
		Description: "Taxi to the client site",
	}
}

func TestReimbursementService_Create(t *testing.T) {
	t.Run("affiliated employee submits", func(t *testing.T) {
		repo := &fakeRequestRepo{}
		svc := NewReimbursementService(repo)

		result, err := svc.Create(authedContext(t, "employee", "EMP001"), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "EMP001", result.EmployeeCode)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("request is attributed to the caller, never a supplied code", func(t *testing.T) {
		repo := &fakeRequestRepo{}
		svc := NewReimbursementService(repo)

		_, err := svc.Create(authedContext(t, "employee", "EMP001"), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "EMP001", repo.requests[0].EmployeeCode)
	})

	t.Run("missing affiliation", func(t *testing.T) {
		svc := NewReimbursementService(&fakeRequestRepo{})

		_, err := svc.Create(authedContext(t, "employee", ""), validRequest())
		assert.ErrorIs(t, err, reimbursement.ErrMissingAffiliation)
	})

	t.Run("privileged caller without affiliation also fails", func(t *testing.T) {
		svc := NewReimbursementService(&fakeRequestRepo{})

		_, err := svc.Create(authedContext(t, "admin", ""), validRequest())
		assert.ErrorIs(t, err, reimbursement.ErrMissingAffiliation)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		svc := NewReimbursementService(&fakeRequestRepo{})

		_, err := svc.Create(context.Background(), validRequest())
		assert.ErrorIs(t, err, access.ErrUnauthenticated)
	})

	t.Run("invalid payload", func(t *testing.T) {
		svc := NewReimbursementService(&fakeRequestRepo{})

		req := validRequest()
		req.Amount = decimal.Zero
		_, err := svc.Create(authedContext(t, "employee", "EMP001"), req)
		assert.Error(t, err)
	})
}

func TestReimbursementService_List(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewReimbursementService(repo)

	for _, code := range []string{"EMP001", "EMP002"} {
		_, err := svc.Create(authedContext(t, "employee", code), validRequest())
		require.NoError(t, err)
	}

	t.Run("officer sees everything", func(t *testing.T) {
		results, err := svc.List(authedContext(t, "payroll_officer", ""))
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("employee sees own requests only", func(t *testing.T) {
		results, err := svc.List(authedContext(t, "employee", "EMP001"))
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "EMP001", results[0].EmployeeCode)
	})

	t.Run("employee denied another employee's requests", func(t *testing.T) {
		_, err := svc.ListByEmployee(authedContext(t, "employee", "EMP001"), "EMP002")
		assert.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestReimbursementService_Process(t *testing.T) {
	newSeeded := func(t *testing.T) (reimbursement.ReimbursementService, *fakeRequestRepo, string) {
		t.Helper()
		repo := &fakeRequestRepo{}
		svc := NewReimbursementService(repo)
		created, err := svc.Create(authedContext(t, "employee", "EMP001"), validRequest())
		require.NoError(t, err)
		return svc, repo, created.ID
	}

	t.Run("officer approves", func(t *testing.T) {
		svc, _, id := newSeeded(t)

		result, err := svc.Process(authedContext(t, "payroll_officer", ""), id, reimbursement.ProcessRequestRequest{Status: "approved"})
		require.NoError(t, err)
		assert.Equal(t, "approved", result.Status)
		assert.NotNil(t, result.ProcessedDate)
		assert.NotNil(t, result.ProcessedBy)
	})

	t.Run("officer rejects", func(t *testing.T) {
		svc, _, id := newSeeded(t)

		result, err := svc.Process(authedContext(t, "payroll_officer", ""), id, reimbursement.ProcessRequestRequest{Status: "rejected"})
		require.NoError(t, err)
		assert.Equal(t, "rejected", result.Status)
	})

	t.Run("second transition conflicts", func(t *testing.T) {
		svc, _, id := newSeeded(t)
		ctx := authedContext(t, "payroll_officer", "")

		_, err := svc.Process(ctx, id, reimbursement.ProcessRequestRequest{Status: "approved"})
		require.NoError(t, err)

		_, err = svc.Process(ctx, id, reimbursement.ProcessRequestRequest{Status: "rejected"})
		assert.ErrorIs(t, err, reimbursement.ErrAlreadyProcessed)
	})

	t.Run("employee cannot process", func(t *testing.T) {
		svc, _, id := newSeeded(t)

		_, err := svc.Process(authedContext(t, "employee", "EMP001"), id, reimbursement.ProcessRequestRequest{Status: "approved"})
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("pending is not a valid target status", func(t *testing.T) {
		svc, _, id := newSeeded(t)

		_, err := svc.Process(authedContext(t, "admin", ""), id, reimbursement.ProcessRequestRequest{Status: "pending"})
		assert.Error(t, err)
	})
}
