package coupon

import "errors"

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidInput   = errors.New("invalid coupon input")
	ErrCodeExists     = errors.New("coupon code already exists")

	// ErrUsageExceeded is returned by Apply when the conditional increment
	// finds the usage cap already reached.
	ErrUsageExceeded = errors.New("coupon usage limit reached")
)
