package cart

// DefaultColor is used when a product has no color selection.
const DefaultColor = "Default"

// Line is one (product, size, color) combination in a cart. Adding the same
// combination again merges into the existing line instead of appending.
type Line struct {
	ProductID     string   `json:"product_id"`
	Name          string   `json:"name"`
	UnitPrice     float64  `json:"unit_price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Size          string   `json:"size"`
	Color         string   `json:"color"`
	Quantity      int      `json:"quantity"`
}

// Key identifies a line inside a cart.
type Key struct {
	ProductID string
	Size      string
	Color     string
}

func (l Line) Key() Key {
	return Key{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

func (l Line) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

type AddItemParams struct {
	ProductID string
	Size      string
	Color     string
	Quantity  int
}

type UpdateQuantityParams struct {
	ProductID string
	Size      string
	Color     string
	Quantity  int
}
