package models

// CartItem is a single cart line. Lines are keyed by (ID, SelectedSize):
// the same product in two different sizes occupies two separate lines.
type CartItem struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"` // NPR, whole rupees
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize,omitempty"`
}

// CartState holds cart lines in insertion order.
type CartState struct {
	Items []CartItem `json:"items"`
}

// Matches reports whether the line is identified by the given product id and
// size variant.
func (i CartItem) Matches(id int, selectedSize string) bool {
	return i.ID == id && i.SelectedSize == selectedSize
}
