package catalog

import "errors"

var (
	ErrMissingField    = errors.New("required field is missing")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrNotFound        = errors.New("product not found")
	ErrNotOwner        = errors.New("product belongs to another seller")
)
