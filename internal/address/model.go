package address

import "time"

type Address struct {
	ID     string `json:"id"`
	UserID uint   `json:"user_id"`

	Name  string `json:"name"`
	Phone string `json:"phone"`

	AddressLine1 string  `json:"address_line1"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	Landmark     *string `json:"landmark,omitempty"`

	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`

	// AddressType is a label like "home" or "work".
	AddressType string `json:"address_type,omitempty"`

	IsDefault bool      `json:"is_default"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAddressInput struct {
	Name         string
	Phone        string
	AddressLine1 string
	AddressLine2 *string
	Landmark     *string
	City         string
	State        string
	Pincode      string
	AddressType  string
	SetAsDefault bool
}

type UpdateAddressInput struct {
	AddressID    string
	Name         string
	Phone        string
	AddressLine1 string
	AddressLine2 *string
	Landmark     *string
	City         string
	State        string
	Pincode      string
	AddressType  string
	SetAsDefault bool
}
