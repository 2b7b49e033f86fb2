package user

import "errors"

var (
	ErrMissingField    = errors.New("required field is missing")
	ErrInvalidRole     = errors.New("role must be buyer or seller")
	ErrEmailTaken      = errors.New("email already exists")
	ErrNotFound        = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthenticated = errors.New("not logged in")
	ErrForbidden       = errors.New("operation not allowed for this role")
)
