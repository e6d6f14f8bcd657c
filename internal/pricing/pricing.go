// Package pricing composes cart subtotal, coupon discount and delivery
// fee into the amount a customer actually pays.
package pricing

import "math"

const (
	// FreeDeliveryThreshold is the subtotal above which delivery is free.
	// The comparison is strict: a subtotal of exactly 2000 still pays.
	FreeDeliveryThreshold = 2000.0

	StandardDeliveryFee = 99.0
)

func DeliveryFee(subtotal float64) float64 {
	if subtotal > FreeDeliveryThreshold {
		return 0
	}
	return StandardDeliveryFee
}

// FinalTotal clamps the discounted subtotal at zero before adding the
// delivery fee, so an oversized fixed discount cannot produce a
// negative charge.
func FinalTotal(subtotal, discount, deliveryFee float64) float64 {
	return math.Max(0, subtotal-discount) + deliveryFee
}

// Quote is the full price breakdown for a cart, computed once at
// checkout and snapshotted onto the order.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"delivery_fee"`
	FinalTotal  float64 `json:"final_total"`
}

func NewQuote(subtotal, discount float64) Quote {
	fee := DeliveryFee(subtotal)
	return Quote{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: fee,
		FinalTotal:  FinalTotal(subtotal, discount, fee),
	}
}
