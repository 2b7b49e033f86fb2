package cart

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrLineNotFound    = errors.New("product is not in the cart")
	ErrEmptyCart       = errors.New("cart is empty")
)
