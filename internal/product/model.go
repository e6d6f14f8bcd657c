package product

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Discount      *int      `json:"discount,omitempty"`
	Image         string    `json:"image"`
	Images        []string  `json:"images,omitempty"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Sizes         []string  `json:"sizes"`
	Colors        []string  `json:"colors,omitempty"`
	Stock         int       `json:"stock"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasSize reports whether the product is offered in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

type NewProductInput struct {
	Name          string
	Price         float64
	OriginalPrice *float64
	Discount      *int
	Image         string
	Images        []string
	Category      string
	Description   string
	Sizes         []string
	Colors        []string
	Stock         int
}

type UpdateProductInput struct {
	ProductID     string
	Name          *string
	Price         *float64
	OriginalPrice *float64
	Discount      *int
	Image         *string
	Images        []string
	Category      *string
	Description   *string
	Sizes         []string
	Colors        []string
	Stock         *int
	IsActive      *bool
}

type GetProductOptions struct {
	ProductID  string
	OnlyActive bool
}

type ListOptions struct {
	Category   *string
	Search     *string
	SortField  string // "price", "name", "created_at"
	SortAsc    bool
	Limit      *uint16
	Page       *uint16
	OnlyActive bool
}
