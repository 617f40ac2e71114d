package checkoutControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cart"
	cartControllers "github.com/Sudippandey619/EcommerceSite-Homeappliance/controllers/cart"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

const deliveryLeadTime = 48 * time.Hour

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutRequest carries the shipping form and payment selection. Required
// fields mirror the storefront's form validation.
type CheckoutRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	PostalCode    string `json:"postalCode"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// BuildOrder freezes the cart into an order. The cart state itself is left
// untouched; the caller clears it once the order is stored.
func BuildOrder(state models.CartState, customer models.Customer, method models.PaymentMethod, now time.Time) (models.Order, error) {
	if len(state.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	totals := cart.ComputeTotals(state)

	lines := make([]models.OrderLine, 0, len(state.Items))
	for _, item := range state.Items {
		lines = append(lines, models.OrderLine{
			ProductID:    item.ID,
			Name:         item.Name,
			Price:        item.Price,
			Quantity:     item.Quantity,
			SelectedSize: item.SelectedSize,
		})
	}

	ms := now.UnixMilli()
	return models.Order{
		ID:                fmt.Sprintf("HH%d", ms),
		Items:             lines,
		Customer:          customer,
		PaymentMethod:     method,
		Subtotal:          totals.Subtotal,
		DeliveryFee:       totals.DeliveryFee,
		Total:             totals.Total,
		Status:            models.TrackingConfirmed,
		SellerStatus:      models.SellerOrderPending,
		EstimatedDelivery: now.Add(deliveryLeadTime),
		TrackingNumber:    fmt.Sprintf("TRK%d", ms),
		CreatedAt:         now,
	}, nil
}

// POST /checkout
// paymentDelay simulates the payment gateway round-trip; pass zero to skip.
func PlaceOrder(db *gorm.DB, store *cart.Store, paymentDelay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
			return
		}

		method, err := models.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sessionID := c.GetHeader(cartControllers.SessionHeader)
		state := store.Get(sessionID)

		customer := models.Customer{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Phone:      req.Phone,
			Address:    req.Address,
			City:       req.City,
			PostalCode: req.PostalCode,
			Notes:      req.Notes,
		}

		order, err := BuildOrder(state, customer, method, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		// Simulated payment processing; there is no real gateway behind this.
		if paymentDelay > 0 {
			time.Sleep(paymentDelay)
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		// The cart is cleared only after the order is safely stored.
		store.Dispatch(sessionID, cart.Action{Type: cart.ClearCart})

		c.JSON(http.StatusCreated, order)
	}
}
