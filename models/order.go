package models

import (
	"errors"
	"strings"
	"time"
)

// TrackingStatus is the customer-facing delivery progression shown on the
// order tracking view. It only ever moves forward:
// confirmed -> processing -> shipped -> delivered.
type TrackingStatus string

// SellerOrderStatus is the seller-panel vocabulary. It is assigned freely by
// the operator and is NOT the same enum as TrackingStatus: the tracking view
// and the seller order list are driven independently and must stay separate.
type SellerOrderStatus string

const (
	TrackingConfirmed  TrackingStatus = "confirmed"
	TrackingProcessing TrackingStatus = "processing"
	TrackingShipped    TrackingStatus = "shipped"
	TrackingDelivered  TrackingStatus = "delivered"

	SellerOrderPending    SellerOrderStatus = "pending"
	SellerOrderProcessing SellerOrderStatus = "processing"
	SellerOrderShipped    SellerOrderStatus = "shipped"
	SellerOrderDelivered  SellerOrderStatus = "delivered"
	SellerOrderCancelled  SellerOrderStatus = "cancelled"
)

var trackingSequence = []TrackingStatus{
	TrackingConfirmed,
	TrackingProcessing,
	TrackingShipped,
	TrackingDelivered,
}

// Index returns the zero-based position of the status in the delivery
// progression. Unknown values map to the start, matching the tracking view's
// fallback.
func (s TrackingStatus) Index() int {
	for i, step := range trackingSequence {
		if s == step {
			return i
		}
	}
	return 0
}

// Terminal reports whether the progression is finished.
func (s TrackingStatus) Terminal() bool {
	return s == TrackingDelivered
}

// Next returns the following status. Delivered is terminal and returns
// itself.
func (s TrackingStatus) Next() TrackingStatus {
	i := s.Index()
	if i >= len(trackingSequence)-1 {
		return TrackingDelivered
	}
	return trackingSequence[i+1]
}

// TrackingSteps returns the full progression in order, for rendering the
// tracking timeline.
func TrackingSteps() []TrackingStatus {
	steps := make([]TrackingStatus, len(trackingSequence))
	copy(steps, trackingSequence)
	return steps
}

// ParseSellerOrderStatus maps a request string to a SellerOrderStatus.
func ParseSellerOrderStatus(s string) (SellerOrderStatus, error) {
	switch SellerOrderStatus(strings.ToLower(s)) {
	case SellerOrderPending:
		return SellerOrderPending, nil
	case SellerOrderProcessing:
		return SellerOrderProcessing, nil
	case SellerOrderShipped:
		return SellerOrderShipped, nil
	case SellerOrderDelivered:
		return SellerOrderDelivered, nil
	case SellerOrderCancelled:
		return SellerOrderCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type PaymentMethod string

const (
	PaymentKhalti  PaymentMethod = "khalti"
	PaymentEsewa   PaymentMethod = "esewa"
	PaymentIMEPay  PaymentMethod = "ime"
	PaymentFonePay PaymentMethod = "fonepay"
	PaymentBank    PaymentMethod = "bank"
	PaymentCOD     PaymentMethod = "cod"
)

// ParsePaymentMethod validates a checkout payment selection.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(s)) {
	case PaymentKhalti, PaymentEsewa, PaymentIMEPay, PaymentFonePay, PaymentBank, PaymentCOD:
		return PaymentMethod(strings.ToLower(s)), nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// Customer carries the shipping contact captured at checkout.
type Customer struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Notes      string `json:"notes"`
}

// Order is created once at checkout. Items are a frozen snapshot of the cart
// at that moment; the live cart is cleared immediately after creation.
type Order struct {
	ID                string            `gorm:"primaryKey" json:"id"`
	Items             []OrderLine       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Customer          Customer          `gorm:"embedded" json:"customer"`
	PaymentMethod     PaymentMethod     `gorm:"type:VARCHAR(20)" json:"payment_method"`
	Subtotal          int               `json:"subtotal"`
	DeliveryFee       int               `json:"delivery_fee"`
	Total             int               `json:"total"`
	Status            TrackingStatus    `gorm:"type:VARCHAR(20);default:'confirmed'" json:"status"`
	SellerStatus      SellerOrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"seller_status"`
	EstimatedDelivery time.Time         `json:"estimated_delivery"`
	TrackingNumber    string            `json:"tracking_number"`
	CreatedAt         time.Time         `json:"created_at"`
}

// OrderLine mirrors a cart line at checkout time.
type OrderLine struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	OrderID      string `gorm:"index" json:"-"`
	ProductID    int    `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize,omitempty"`
}
