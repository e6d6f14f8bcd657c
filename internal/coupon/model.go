package coupon

import (
	"math"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Coupon struct {
	ID             string       `json:"id"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	DiscountType   DiscountType `json:"discount_type"`
	DiscountValue  float64      `json:"discount_value"`
	MaxDiscount    *float64     `json:"max_discount,omitempty"`
	MinOrderAmount *float64     `json:"min_order_amount,omitempty"`
	MaxUsage       *int         `json:"max_usage,omitempty"`
	UsedCount      int          `json:"used_count"`
	ExpiryDate     *time.Time   `json:"expiry_date,omitempty"`
	IsActive       bool         `json:"is_active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      *time.Time   `json:"updated_at,omitempty"`
}

// DiscountFor computes the discount this coupon grants on the given subtotal.
// Percentage discounts are capped at MaxDiscount when set; the result never
// exceeds the subtotal, so totals cannot go negative.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	var discount float64
	if c.DiscountType == DiscountPercentage {
		discount = subtotal * c.DiscountValue / 100
		if c.MaxDiscount != nil && discount > *c.MaxDiscount {
			discount = *c.MaxDiscount
		}
	} else {
		discount = c.DiscountValue
	}
	return math.Min(discount, subtotal)
}

// Result is the outcome of validating a coupon against a cart subtotal.
// Validation failures are results, never errors: the caller shows Message
// and leaves the cart untouched.
type Result struct {
	Valid          bool    `json:"valid"`
	Coupon         *Coupon `json:"coupon,omitempty"`
	DiscountAmount float64 `json:"discount_amount,omitempty"`
	Message        string  `json:"message"`
}

type NewCouponInput struct {
	Code           string
	Name           string
	Description    string
	DiscountType   DiscountType
	DiscountValue  float64
	MaxDiscount    *float64
	MinOrderAmount *float64
	MaxUsage       *int
	ExpiryDate     *time.Time
	IsActive       bool
}

type UpdateCouponInput struct {
	CouponID       string
	Name           *string
	Description    *string
	DiscountType   *DiscountType
	DiscountValue  *float64
	MaxDiscount    *float64
	MinOrderAmount *float64
	MaxUsage       *int
	ExpiryDate     *time.Time
	IsActive       *bool
}
