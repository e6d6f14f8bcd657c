package order

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
// Any valid status may follow any other; there is no transition graph.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentPhonePe        PaymentMethod = "phonepe"
	PaymentCashOnDelivery PaymentMethod = "cod"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// Item is a cart line frozen at checkout. Prices are copied from the
// catalog at assembly time and never re-read afterwards.
type Item struct {
	ProductID     string   `json:"product_id"`
	Name          string   `json:"name"`
	UnitPrice     float64  `json:"unit_price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Image         string   `json:"image,omitempty"`
	Size          string   `json:"size"`
	Color         string   `json:"color"`
	Quantity      int      `json:"quantity"`
}

func (i Item) Total() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type DeliveryAddress struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email,omitempty"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	Landmark     *string `json:"landmark,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Pincode      string  `json:"pincode"`
	AddressType  string  `json:"address_type,omitempty"`
}

type Order struct {
	ID                string          `json:"id"`
	UserID            uint            `json:"user_id"`
	Items             []Item          `json:"items"`
	Subtotal          float64         `json:"subtotal"`
	Discount          float64         `json:"discount"`
	DeliveryFee       float64         `json:"delivery_fee"`
	FinalTotal        float64         `json:"final_total"`
	CouponCode        *string         `json:"coupon_code,omitempty"`
	Status            Status          `json:"status"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	TransactionID     *string         `json:"transaction_id,omitempty"`
	DeliveryAddress   DeliveryAddress `json:"delivery_address"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

// CheckoutParams is everything the caller supplies at checkout; the
// cart contents and prices come from the server side.
type CheckoutParams struct {
	CouponCode      string
	PaymentMethod   PaymentMethod
	TransactionID   *string
	DeliveryAddress DeliveryAddress
}

type ListOptions struct {
	UserID *uint
	Status *Status
	Limit  int
	Offset int
}
