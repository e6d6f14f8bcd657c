package cart

import "errors"

var (
	// -- Validation & Input --
	ErrSizeRequired    = errors.New("size must be selected before adding to cart")
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrSizeUnavailable = errors.New("size not available for this product")

	// -- Resource State --
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
)
