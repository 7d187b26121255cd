package deduction

import (
	"context"
	"testing"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/access"
	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuleRepo struct {
	rules []deduction.Rule
}

func (f *fakeRuleRepo) Create(ctx context.Context, rule deduction.Rule) (deduction.Rule, error) {
	for _, existing := range f.rules {
		if existing.Name == rule.Name {
			return deduction.Rule{}, deduction.ErrRuleNameExists
		}
	}
	f.rules = append(f.rules, rule)
	return rule, nil
}

func (f *fakeRuleRepo) ListAll(ctx context.Context) ([]deduction.Rule, error) {
	return f.rules, nil
}

func authedContext(t *testing.T, role string) context.Context {
	t.Helper()

	ta := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ta.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestRuleService_Create(t *testing.T) {
	t.Run("mandatory defaults to true", func(t *testing.T) {
		repo := &fakeRuleRepo{}
		svc := NewRuleService(repo)

		result, err := svc.Create(authedContext(t, "admin"), deduction.CreateRuleRequest{
			Name:         "Income Tax",
			Kind:         "tax",
			Percentage:   decimal.NewFromInt(22),
			IsPercentage: true,
		})
		require.NoError(t, err)
		assert.True(t, result.IsMandatory)
	})

	t.Run("explicit optional flag is kept", func(t *testing.T) {
		repo := &fakeRuleRepo{}
		svc := NewRuleService(repo)

		optional := false
		result, err := svc.Create(authedContext(t, "payroll_officer"), deduction.CreateRuleRequest{
			Name:        "Sports Club",
			Kind:        "other",
			Amount:      decimal.NewFromInt(25),
			IsMandatory: &optional,
		})
		require.NoError(t, err)
		assert.False(t, result.IsMandatory)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := &fakeRuleRepo{}
		svc := NewRuleService(repo)
		ctx := authedContext(t, "admin")

		req := deduction.CreateRuleRequest{Name: "Income Tax", Kind: "tax", Percentage: decimal.NewFromInt(22), IsPercentage: true}
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)

		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, deduction.ErrRuleNameExists)
	})

	t.Run("percentage out of range", func(t *testing.T) {
		svc := NewRuleService(&fakeRuleRepo{})

		_, err := svc.Create(authedContext(t, "admin"), deduction.CreateRuleRequest{
			Name:         "Broken",
			Kind:         "tax",
			Percentage:   decimal.NewFromInt(120),
			IsPercentage: true,
		})
		assert.Error(t, err)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		svc := NewRuleService(&fakeRuleRepo{})

		_, err := svc.Create(authedContext(t, "employee"), deduction.CreateRuleRequest{
			Name: "X", Kind: "other", Amount: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, access.ErrForbidden)
	})
}

func TestRuleService_ListAll(t *testing.T) {
	repo := &fakeRuleRepo{rules: []deduction.Rule{
		{Name: "Income Tax", Kind: deduction.KindTax},
		{Name: "Provident Fund", Kind: deduction.KindPF},
	}}
	svc := NewRuleService(repo)

	t.Run("preserves creation order", func(t *testing.T) {
		results, err := svc.ListAll(authedContext(t, "payroll_officer"))
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Income Tax", results[0].Name)
		assert.Equal(t, "Provident Fund", results[1].Name)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		_, err := svc.ListAll(authedContext(t, "employee"))
		assert.ErrorIs(t, err, access.ErrForbidden)
	})
}
