package payout

import "errors"

var (
	ErrMissingField        = errors.New("required field is missing")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrMissingBankDetails  = errors.New("bank name, account and IFSC are required")
	ErrInsufficientBalance = errors.New("amount exceeds available balance")
)
