package order

import "errors"

var (
	ErrMissingField       = errors.New("required field is missing")
	ErrMissingDelivery    = errors.New("delivery name, phone and address are required")
	ErrNoItems            = errors.New("order must contain at least one item")
	ErrNotFound           = errors.New("order not found")
	ErrUnknownAction      = errors.New("unknown order action")
	ErrTransitionRejected = errors.New("status transition not allowed")
)
