package deduction

import "errors"

var (
	ErrRuleNotFound   = errors.New("deduction rule not found")
	ErrRuleNameExists = errors.New("deduction rule name already exists")
	ErrInvalidKind    = errors.New("invalid deduction kind")
)
