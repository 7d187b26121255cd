package payroll

import "errors"

var (
	ErrRecordNotFound = errors.New("payroll record not found")
	ErrRecordExists   = errors.New("payroll record already exists for this period")
	ErrInvalidPeriod  = errors.New("invalid payroll period")
)
