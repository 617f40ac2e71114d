package cart

import "github.com/Sudippandey619/EcommerceSite-Homeappliance/models"

const (
	// FreeDeliveryThreshold is the subtotal above which delivery is free.
	// Strictly greater than: a subtotal of exactly 5000 still pays the fee.
	FreeDeliveryThreshold = 5000

	// StandardDeliveryFee applies below the threshold, empty carts included.
	StandardDeliveryFee = 200
)

// Totals is the derived price breakdown for a cart. All values in NPR.
type Totals struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"delivery_fee"`
	Total       int `json:"total"`
}

// ComputeTotals derives the price breakdown from cart state.
func ComputeTotals(state models.CartState) Totals {
	subtotal := 0
	for _, item := range state.Items {
		subtotal += item.Price * item.Quantity
	}
	fee := StandardDeliveryFee
	if subtotal > FreeDeliveryThreshold {
		fee = 0
	}
	return Totals{Subtotal: subtotal, DeliveryFee: fee, Total: subtotal + fee}
}
