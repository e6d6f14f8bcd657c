package order

import (
	"testing"
	"time"

	"vesture-be/internal/cart"
	"vesture-be/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func testAddress() DeliveryAddress {
	return DeliveryAddress{
		Name:         "Asha Rao",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		AddressType:  "home",
	}
}

func TestAssemble(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	lines := []cart.Line{
		{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 799, Size: "M", Color: "Black", Quantity: 2},
	}
	quote := pricing.NewQuote(1598, 0)

	t.Run("PrepaidStartsConfirmed", func(t *testing.T) {
		txn := "T123"
		o := Assemble(7, lines, quote, CheckoutParams{
			PaymentMethod:   PaymentPhonePe,
			TransactionID:   &txn,
			DeliveryAddress: testAddress(),
		}, now)

		assert.Equal(t, StatusConfirmed, o.Status)
		assert.Equal(t, PaymentPaid, o.PaymentStatus)
		assert.Equal(t, now.AddDate(0, 0, 5), o.EstimatedDelivery)
		assert.Equal(t, uint(7), o.UserID)
		if assert.Len(t, o.Items, 1) {
			assert.Equal(t, 799.0, o.Items[0].UnitPrice, "price frozen from cart line")
		}
	})

	t.Run("CodStartsPending", func(t *testing.T) {
		o := Assemble(7, lines, quote, CheckoutParams{
			PaymentMethod:   PaymentCashOnDelivery,
			DeliveryAddress: testAddress(),
		}, now)

		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, PaymentPending, o.PaymentStatus)
		assert.Nil(t, o.CouponCode)
	})

	t.Run("EmptyTransactionIDIsPending", func(t *testing.T) {
		empty := ""
		o := Assemble(7, lines, quote, CheckoutParams{
			PaymentMethod:   PaymentPhonePe,
			TransactionID:   &empty,
			DeliveryAddress: testAddress(),
		}, now)

		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("QuoteSnapshotted", func(t *testing.T) {
		q := pricing.NewQuote(2500, 300)
		o := Assemble(7, lines, q, CheckoutParams{
			CouponCode:      "WELCOME10",
			PaymentMethod:   PaymentCashOnDelivery,
			DeliveryAddress: testAddress(),
		}, now)

		assert.Equal(t, 2500.0, o.Subtotal)
		assert.Equal(t, 300.0, o.Discount)
		assert.Equal(t, 0.0, o.DeliveryFee)
		assert.Equal(t, 2200.0, o.FinalTotal)
		if assert.NotNil(t, o.CouponCode) {
			assert.Equal(t, "WELCOME10", *o.CouponCode)
		}
	})
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled,
	} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus("returned"))
	assert.False(t, ValidStatus(""))
}
