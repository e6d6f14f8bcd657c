package order

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrIncompleteAddress    = errors.New("incomplete delivery address")
	ErrForbidden            = errors.New("order belongs to another user")
)

// CouponRejectedError carries the customer-facing rejection message so
// the handler can return it verbatim.
type CouponRejectedError struct {
	Message string
}

func (e *CouponRejectedError) Error() string {
	return fmt.Sprintf("coupon rejected: %s", e.Message)
}
