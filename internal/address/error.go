package address

import "errors"

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrInvalidInput    = errors.New("invalid address input")
)
