package order

import "time"

// CreatedEvent is published to the orders topic after an order commits.
// Consumers (the notifier) must tolerate missing optional fields.
type CreatedEvent struct {
	OrderID       string    `json:"order_id"`
	UserID        uint      `json:"user_id"`
	FinalTotal    float64   `json:"final_total"`
	ItemCount     int       `json:"item_count"`
	PaymentMethod string    `json:"payment_method"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewCreatedEvent(o Order) CreatedEvent {
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}
	return CreatedEvent{
		OrderID:       o.ID,
		UserID:        o.UserID,
		FinalTotal:    o.FinalTotal,
		ItemCount:     count,
		PaymentMethod: string(o.PaymentMethod),
		CustomerName:  o.DeliveryAddress.Name,
		CustomerPhone: o.DeliveryAddress.Phone,
		CreatedAt:     o.CreatedAt,
	}
}
