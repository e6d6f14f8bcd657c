package notify

import (
	"strings"
	"testing"
	"time"

	"vesture-be/internal/order"

	"github.com/stretchr/testify/assert"
)

func sampleOrder() order.Order {
	code := "WELCOME10"
	txn := "T123"
	return order.Order{
		ID:     "ORD-20260314-100000-123-4567",
		UserID: 7,
		Items: []order.Item{
			{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 799, Size: "M", Color: "Black", Quantity: 2},
		},
		Subtotal:      1598,
		Discount:      159.8,
		DeliveryFee:   99,
		FinalTotal:    1537.2,
		CouponCode:    &code,
		Status:        order.StatusConfirmed,
		PaymentMethod: order.PaymentPhonePe,
		PaymentStatus: order.PaymentPaid,
		TransactionID: &txn,
		DeliveryAddress: order.DeliveryAddress{
			Name:         "Asha Rao",
			Phone:        "9876543210",
			Email:        "asha@example.com",
			AddressLine1: "12 MG Road",
			City:         "Bengaluru",
			State:        "Karnataka",
			Pincode:      "560001",
			AddressType:  "home",
		},
		EstimatedDelivery: time.Date(2026, 3, 19, 10, 0, 0, 0, time.UTC),
		CreatedAt:         time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderMessage(t *testing.T) {
	msg := OrderMessage(sampleOrder())

	for _, want := range []string{
		"NEW ORDER",
		"Order ID: #ORD-20260314-100000-123-4567",
		"Status: CONFIRMED",
		"Payment: PHONEPE",
		"Name: Asha Rao",
		"PIN: 560001",
		"Type: HOME",
		"Qty: 2 × ₹799 = ₹1598",
		"Discount: -₹159.80 (WELCOME10)",
		"Delivery Fee: ₹99",
		"*TOTAL: ₹1537.20*",
		"Transaction ID: T123",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestOrderMessage_FreeDelivery(t *testing.T) {
	o := sampleOrder()
	o.DeliveryFee = 0

	msg := OrderMessage(o)
	assert.Contains(t, msg, "Delivery Fee: FREE")
}

func TestOrderMessage_NoDiscountLine(t *testing.T) {
	o := sampleOrder()
	o.Discount = 0
	o.CouponCode = nil

	msg := OrderMessage(o)
	assert.NotContains(t, msg, "Discount:")
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage(sampleOrder())

	assert.Contains(t, msg, "Hi Asha Rao,")
	assert.Contains(t, msg, "Your order #ORD-20260314-100000-123-4567 has been confirmed!")
	assert.Contains(t, msg, "Oversized Tee (M, Black) × 2")
	assert.Contains(t, msg, "Delivering to: Bengaluru, Karnataka")
}

func TestLink(t *testing.T) {
	link := Link("919876543210", "hello world & more")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
	assert.NotContains(t, link, " ", "message must be URL encoded")
	assert.Contains(t, link, "hello+world+%26+more")
}
