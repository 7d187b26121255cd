package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.RecordRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, employee_code, period_month, period_year, base_salary,
	overtime_hours, overtime_rate, bonuses, gross_salary,
	deductions_detail, total_deductions, net_salary, status, processed_at, created_at`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	var deductionsBytes []byte
	err := row.Scan(
		&rec.ID, &rec.EmployeeCode, &rec.Month, &rec.Year, &rec.BaseSalary,
		&rec.OvertimeHours, &rec.OvertimeRate, &rec.Bonuses, &rec.GrossSalary,
		&deductionsBytes, &rec.TotalDeductions, &rec.NetSalary, &rec.Status, &rec.ProcessedAt, &rec.CreatedAt,
	)
	if err != nil {
		return payroll.Record{}, err
	}
	if err := json.Unmarshal(deductionsBytes, &rec.Deductions); err != nil {
		return payroll.Record{}, fmt.Errorf("failed to decode deductions detail: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	deductionsJSON, _ := json.Marshal(record.Deductions)

	query := `
		INSERT INTO payroll_records (
			employee_code, period_month, period_year, base_salary,
			overtime_hours, overtime_rate, bonuses, gross_salary,
			deductions_detail, total_deductions, net_salary, status, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.EmployeeCode, record.Month, record.Year, record.BaseSalary,
		record.OvertimeHours, record.OvertimeRate, record.Bonuses, record.GrossSalary,
		deductionsJSON, record.TotalDeductions, record.NetSalary, record.Status, record.ProcessedAt,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.Record{}, payroll.ErrRecordExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE id = $1`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeCode != nil {
		query += fmt.Sprintf(" AND employee_code = $%d", argIdx)
		args = append(args, *filter.EmployeeCode)
		argIdx++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND period_month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND period_year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY period_year DESC, period_month DESC, employee_code"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeCode string) ([]payroll.Record, error) {
	code := employeeCode
	return r.List(ctx, payroll.Filter{EmployeeCode: &code})
}

func (r *payrollRepository) ListProcessedByPeriod(ctx context.Context, month, year int) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE period_month = $1 AND period_year = $2 AND status = 'processed'
		ORDER BY employee_code`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list processed payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
