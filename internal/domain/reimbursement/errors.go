package reimbursement

import "errors"

var (
	ErrRequestNotFound    = errors.New("reimbursement request not found")
	ErrAlreadyProcessed   = errors.New("reimbursement request already processed")
	ErrMissingAffiliation = errors.New("principal has no employee affiliation")
	ErrInvalidCategory    = errors.New("invalid reimbursement category")
)
