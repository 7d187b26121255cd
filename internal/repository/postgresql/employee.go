package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/employee"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_code, first_name, last_name, email, phone_number,
			department, position, joining_date, base_salary,
			bank_account, tax_id, address, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, employee_code, first_name, last_name, email, phone_number,
			department, position, joining_date, base_salary,
			bank_account, tax_id, address, status, created_at, updated_at
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
		emp.Department, emp.Position, emp.JoiningDate, emp.BaseSalary,
		emp.BankAccount, emp.TaxID, emp.Address, emp.Status,
	).Scan(
		&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
		&e.Department, &e.Position, &e.JoiningDate, &e.BaseSalary,
		&e.BankAccount, &e.TaxID, &e.Address, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if strings.Contains(err.Error(), "uk_employees_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, first_name, last_name, email, phone_number,
			   department, position, joining_date, base_salary,
			   bank_account, tax_id, address, status, created_at, updated_at
		FROM employees
		WHERE employee_code = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, code).Scan(
		&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
		&e.Department, &e.Position, &e.JoiningDate, &e.BaseSalary,
		&e.BankAccount, &e.TaxID, &e.Address, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, first_name, last_name, email, phone_number,
			   department, position, joining_date, base_salary,
			   bank_account, tax_id, address, status, created_at, updated_at
		FROM employees
		WHERE status = 'active'
		ORDER BY employee_code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
			&e.Department, &e.Position, &e.JoiningDate, &e.BaseSalary,
			&e.BankAccount, &e.TaxID, &e.Address, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// employee_code is immutable, everything else follows the entity.
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, phone_number = $5,
			department = $6, position = $7, joining_date = $8, base_salary = $9,
			bank_account = $10, tax_id = $11, address = $12, status = $13,
			updated_at = NOW()
		WHERE employee_code = $1
		RETURNING id, employee_code, first_name, last_name, email, phone_number,
			department, position, joining_date, base_salary,
			bank_account, tax_id, address, status, created_at, updated_at
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
		emp.Department, emp.Position, emp.JoiningDate, emp.BaseSalary,
		emp.BankAccount, emp.TaxID, emp.Address, emp.Status,
	).Scan(
		&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
		&e.Department, &e.Position, &e.JoiningDate, &e.BaseSalary,
		&e.BankAccount, &e.TaxID, &e.Address, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "uk_employees_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) UpdateStatus(ctx context.Context, code string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET status = $2, updated_at = NOW()
		WHERE employee_code = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, code, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee status: %w", err)
	}

	return nil
}

func (r *employeeRepository) CountActive(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = 'active'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}
