package reimbursement

import (
	"time"

	"github.com/finpay-hq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequestRequest struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ReceiptURL  *string         `json:"receipt_url,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	} else if !ValidCategory(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be one of travel, medical, food, other"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessRequestRequest struct {
	Status string `json:"status"`
}

func (r *ProcessRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	switch Status(r.Status) {
	case StatusApproved, StatusRejected, StatusPaid:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of approved, rejected, paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID            string          `json:"id"`
	EmployeeCode  string          `json:"employee_id"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	ReceiptURL    *string         `json:"receipt_url,omitempty"`
	Status        string          `json:"status"`
	SubmittedDate string          `json:"submitted_date"`
	ProcessedDate *string         `json:"processed_date,omitempty"`
	ProcessedBy   *string         `json:"processed_by,omitempty"`
}

func ToResponse(r Request) RequestResponse {
	var processedDate *string
	if r.ProcessedDate != nil {
		str := r.ProcessedDate.Format(time.RFC3339)
		processedDate = &str
	}

	return RequestResponse{
		ID:            r.ID,
		EmployeeCode:  r.EmployeeCode,
		Category:      string(r.Category),
		Amount:        r.Amount,
		Description:   r.Description,
		ReceiptURL:    r.ReceiptURL,
		Status:        string(r.Status),
		SubmittedDate: r.SubmittedDate.Format(time.RFC3339),
		ProcessedDate: processedDate,
		ProcessedBy:   r.ProcessedBy,
	}
}

func ToResponses(requests []Request) []RequestResponse {
	result := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, ToResponse(r))
	}
	return result
}
