package postgresql

import (
	"context"
	"fmt"

	"github.com/finpay-hq/payroll-backend-go/internal/domain/reimbursement"
	"github.com/finpay-hq/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reimbursementRepository struct {
	db *database.DB
}

func NewReimbursementRepository(db *database.DB) reimbursement.RequestRepository {
	return &reimbursementRepository{db: db}
}

const reimbursementColumns = `id, employee_code, category, amount, description,
	receipt_url, status, submitted_date, processed_date, processed_by`

func scanReimbursement(row pgx.Row) (reimbursement.Request, error) {
	var req reimbursement.Request
	err := row.Scan(
		&req.ID, &req.EmployeeCode, &req.Category, &req.Amount, &req.Description,
		&req.ReceiptURL, &req.Status, &req.SubmittedDate, &req.ProcessedDate, &req.ProcessedBy,
	)
	return req, err
}

func (r *reimbursementRepository) Create(ctx context.Context, req reimbursement.Request) (reimbursement.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reimbursement_requests (employee_code, category, amount, description, receipt_url, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reimbursementColumns

	created, err := scanReimbursement(q.QueryRow(ctx, query,
		req.EmployeeCode, req.Category, req.Amount, req.Description, req.ReceiptURL, req.Status,
	))
	if err != nil {
		return reimbursement.Request{}, fmt.Errorf("failed to create reimbursement request: %w", err)
	}

	return created, nil
}

func (r *reimbursementRepository) GetByID(ctx context.Context, id string) (reimbursement.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reimbursementColumns + ` FROM reimbursement_requests WHERE id = $1`

	req, err := scanReimbursement(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return reimbursement.Request{}, reimbursement.ErrRequestNotFound
		}
		return reimbursement.Request{}, fmt.Errorf("failed to get reimbursement request: %w", err)
	}

	return req, nil
}

func (r *reimbursementRepository) ListAll(ctx context.Context) ([]reimbursement.Request, error) {
	return r.list(ctx, `SELECT `+reimbursementColumns+` FROM reimbursement_requests ORDER BY submitted_date DESC`)
}

func (r *reimbursementRepository) ListByEmployee(ctx context.Context, employeeCode string) ([]reimbursement.Request, error) {
	return r.list(ctx,
		`SELECT `+reimbursementColumns+` FROM reimbursement_requests WHERE employee_code = $1 ORDER BY submitted_date DESC`,
		employeeCode,
	)
}

func (r *reimbursementRepository) list(ctx context.Context, query string, args ...interface{}) ([]reimbursement.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reimbursement requests: %w", err)
	}
	defer rows.Close()

	var requests []reimbursement.Request
	for rows.Next() {
		req, err := scanReimbursement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reimbursement request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *reimbursementRepository) UpdateStatus(ctx context.Context, id string, status reimbursement.Status, processedBy string) (reimbursement.Request, error) {
	q := GetQuerier(ctx, r.db)

	// The status guard in the WHERE clause makes the transition single-shot.
	query := `
		UPDATE reimbursement_requests
		SET status = $2, processed_date = NOW(), processed_by = $3
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + reimbursementColumns

	req, err := scanReimbursement(q.QueryRow(ctx, query, id, status, processedBy))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish a missing row from one already processed.
			var exists bool
			if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reimbursement_requests WHERE id = $1)`, id).Scan(&exists); checkErr == nil && exists {
				return reimbursement.Request{}, reimbursement.ErrAlreadyProcessed
			}
			return reimbursement.Request{}, reimbursement.ErrRequestNotFound
		}
		return reimbursement.Request{}, fmt.Errorf("failed to update reimbursement status: %w", err)
	}

	return req, nil
}

func (r *reimbursementRepository) CountPending(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM reimbursement_requests WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending reimbursements: %w", err)
	}

	return count, nil
}
