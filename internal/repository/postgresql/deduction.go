package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/deduction"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.RuleRepository {
	return &deductionRepository{db: db}
}

func (r *deductionRepository) Create(ctx context.Context, rule deduction.Rule) (deduction.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deduction_rules (name, type, amount, percentage, is_percentage, is_mandatory)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, type, amount, percentage, is_percentage, is_mandatory, created_at, updated_at
	`

	var d deduction.Rule
	err := q.QueryRow(ctx, query,
		rule.Name, rule.Kind, rule.Amount, rule.Percentage, rule.IsPercentage, rule.IsMandatory,
	).Scan(
		&d.ID, &d.Name, &d.Kind, &d.Amount, &d.Percentage, &d.IsPercentage, &d.IsMandatory, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_deduction_rules_name") {
			return deduction.Rule{}, deduction.ErrRuleNameExists
		}
		return deduction.Rule{}, fmt.Errorf("failed to create deduction rule: %w", err)
	}

	return d, nil
}

func (r *deductionRepository) ListAll(ctx context.Context) ([]deduction.Rule, error) {
	q := GetQuerier(ctx, r.db)

	// Creation order is the application order during payroll processing.
	query := `
		SELECT id, name, type, amount, percentage, is_percentage, is_mandatory, created_at, updated_at
		FROM deduction_rules
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction rules: %w", err)
	}
	defer rows.Close()

	var rules []deduction.Rule
	for rows.Next() {
		var d deduction.Rule
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Kind, &d.Amount, &d.Percentage, &d.IsPercentage, &d.IsMandatory, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deduction rule: %w", err)
		}
		rules = append(rules, d)
	}

	return rules, nil
}
