package order

import (
	"time"

	"vesture-be/internal/cart"
	"vesture-be/internal/pricing"
)

// EstimatedDeliveryDays is the flat delivery promise shown to customers.
const EstimatedDeliveryDays = 5

// Assemble builds an order snapshot from cart lines, a price quote and
// the checkout parameters. Pure: the caller persists the result and
// consumes the coupon afterwards.
//
// Orders with a transaction id start out confirmed and paid; everything
// else (cash on delivery) starts pending.
func Assemble(userID uint, lines []cart.Line, quote pricing.Quote, params CheckoutParams, now time.Time) Order {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ProductID:     l.ProductID,
			Name:          l.Name,
			UnitPrice:     l.UnitPrice,
			OriginalPrice: l.OriginalPrice,
			Image:         l.Image,
			Size:          l.Size,
			Color:         l.Color,
			Quantity:      l.Quantity,
		})
	}

	status := StatusPending
	paymentStatus := PaymentPending
	if params.TransactionID != nil && *params.TransactionID != "" {
		status = StatusConfirmed
		paymentStatus = PaymentPaid
	}

	var couponCode *string
	if params.CouponCode != "" {
		code := params.CouponCode
		couponCode = &code
	}

	return Order{
		ID:                NewOrderNumber(),
		UserID:            userID,
		Items:             items,
		Subtotal:          quote.Subtotal,
		Discount:          quote.Discount,
		DeliveryFee:       quote.DeliveryFee,
		FinalTotal:        quote.FinalTotal,
		CouponCode:        couponCode,
		Status:            status,
		PaymentMethod:     params.PaymentMethod,
		PaymentStatus:     paymentStatus,
		TransactionID:     params.TransactionID,
		DeliveryAddress:   params.DeliveryAddress,
		EstimatedDelivery: now.AddDate(0, 0, EstimatedDeliveryDays),
		CreatedAt:         now,
	}
}
