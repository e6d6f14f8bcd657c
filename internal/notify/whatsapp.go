// Package notify renders order notifications for the store's WhatsApp
// channel. It builds text and links only; delivery happens out of band.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"vesture-be/internal/order"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

func inr(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("₹%.0f", amount)
	}
	return fmt.Sprintf("₹%.2f", amount)
}

// OrderMessage renders the full store-facing order summary sent to the
// shop owner when an order lands.
func OrderMessage(o order.Order) string {
	var b strings.Builder

	b.WriteString("🛍️ *DOPE FASHION - NEW ORDER*\n")
	b.WriteString(divider + "\n\n")

	b.WriteString("📋 *ORDER DETAILS*\n")
	fmt.Fprintf(&b, "Order ID: #%s\n", o.ID)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Format("02 Jan 2006, 03:04 PM"))
	fmt.Fprintf(&b, "Status: %s\n", strings.ToUpper(string(o.Status)))
	fmt.Fprintf(&b, "Payment: %s\n\n", strings.ToUpper(string(o.PaymentMethod)))

	addr := o.DeliveryAddress
	b.WriteString("👤 *CUSTOMER DETAILS*\n")
	fmt.Fprintf(&b, "Name: %s\n", addr.Name)
	fmt.Fprintf(&b, "Phone: %s\n", addr.Phone)
	if addr.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", addr.Email)
	}
	b.WriteString("\n")

	b.WriteString("📍 *DELIVERY ADDRESS*\n")
	fmt.Fprintf(&b, "%s\n", addr.AddressLine1)
	if addr.AddressLine2 != nil && *addr.AddressLine2 != "" {
		fmt.Fprintf(&b, "%s\n", *addr.AddressLine2)
	}
	if addr.Landmark != nil && *addr.Landmark != "" {
		fmt.Fprintf(&b, "Near: %s\n", *addr.Landmark)
	}
	fmt.Fprintf(&b, "%s, %s\n", addr.City, addr.State)
	fmt.Fprintf(&b, "PIN: %s\n", addr.Pincode)
	if addr.AddressType != "" {
		fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(addr.AddressType))
	}
	b.WriteString("\n")

	b.WriteString("🛒 *ORDER ITEMS*\n")
	b.WriteString(divider + "\n")
	for i, it := range o.Items {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, it.Name)
		fmt.Fprintf(&b, "   Size: %s", it.Size)
		if it.Color != "" {
			fmt.Fprintf(&b, " | Color: %s", it.Color)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "   Qty: %d × %s = %s\n\n", it.Quantity, inr(it.UnitPrice), inr(it.Total()))
	}

	b.WriteString("💰 *PRICE BREAKDOWN*\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", inr(o.Subtotal))
	if o.Discount > 0 {
		fmt.Fprintf(&b, "Discount: -%s", inr(o.Discount))
		if o.CouponCode != nil {
			fmt.Fprintf(&b, " (%s)", *o.CouponCode)
		}
		b.WriteString("\n")
	}
	if o.DeliveryFee > 0 {
		fmt.Fprintf(&b, "Delivery Fee: %s\n", inr(o.DeliveryFee))
	} else {
		b.WriteString("Delivery Fee: FREE\n")
	}
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "*TOTAL: %s*\n\n", inr(o.FinalTotal))

	b.WriteString("💳 *PAYMENT STATUS*\n")
	fmt.Fprintf(&b, "Method: %s\n", strings.ToUpper(string(o.PaymentMethod)))
	fmt.Fprintf(&b, "Status: %s\n", strings.ToUpper(string(o.PaymentStatus)))
	if o.TransactionID != nil && *o.TransactionID != "" {
		fmt.Fprintf(&b, "Transaction ID: %s\n", *o.TransactionID)
	}
	b.WriteString("\n")

	b.WriteString("🚚 *ESTIMATED DELIVERY*\n")
	fmt.Fprintf(&b, "%s\n\n", o.EstimatedDelivery.Format("02 Jan 2006"))

	b.WriteString(divider + "\n")
	b.WriteString("Thank you for shopping with DOPE! 🙏\n")
	b.WriteString("For support: Contact us anytime\n")
	b.WriteString("Website: https://dope-fashion.com\n")
	b.WriteString(divider)

	return b.String()
}

// ConfirmationMessage is the shorter customer-facing variant.
func ConfirmationMessage(o order.Order) string {
	var b strings.Builder

	b.WriteString("🎉 *Order Confirmed!*\n\n")
	fmt.Fprintf(&b, "Hi %s,\n\n", o.DeliveryAddress.Name)
	fmt.Fprintf(&b, "Your order #%s has been confirmed!\n\n", o.ID)
	b.WriteString("📦 *Items Ordered:*\n")
	for i, it := range o.Items {
		fmt.Fprintf(&b, "%d. %s (%s", i+1, it.Name, it.Size)
		if it.Color != "" {
			fmt.Fprintf(&b, ", %s", it.Color)
		}
		fmt.Fprintf(&b, ") × %d\n", it.Quantity)
	}
	fmt.Fprintf(&b, "\n💰 *Total: %s*\n\n", inr(o.FinalTotal))
	fmt.Fprintf(&b, "📍 Delivering to: %s, %s\n\n", o.DeliveryAddress.City, o.DeliveryAddress.State)
	fmt.Fprintf(&b, "🚚 Estimated delivery: %s\n\n", o.EstimatedDelivery.Format("02/01/2006"))
	b.WriteString("Thank you for choosing DOPE Fashion! 🛍️")

	return b.String()
}

// Link builds a wa.me URL with the message prefilled.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}
