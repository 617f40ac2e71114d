package checkoutControllers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

func TestBuildOrder_EmptyCartIsRejected(t *testing.T) {
	_, err := BuildOrder(models.CartState{}, models.Customer{}, models.PaymentCOD, time.Now())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildOrder_FreezesTotals(t *testing.T) {
	state := models.CartState{Items: []models.CartItem{
		{ID: 1, Name: "Electric Kettle", Price: 1000, Quantity: 3},
	}}

	order, err := BuildOrder(state, models.Customer{FirstName: "Sita"}, models.PaymentKhalti, time.Now())
	require.NoError(t, err)

	require.Equal(t, 3000, order.Subtotal)
	require.Equal(t, 200, order.DeliveryFee)
	require.Equal(t, 3200, order.Total)
	require.Len(t, order.Items, 1)
	require.Equal(t, 3, order.Items[0].Quantity)
}

func TestBuildOrder_IdentifiersAndLifecycle(t *testing.T) {
	now := time.Date(2025, 10, 12, 9, 30, 0, 0, time.UTC)
	state := models.CartState{Items: []models.CartItem{
		{ID: 3, Name: "Refrigerator", Price: 125000, Quantity: 1},
	}}

	order, err := BuildOrder(state, models.Customer{FirstName: "Ram"}, models.PaymentEsewa, now)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(order.ID, "HH"))
	require.True(t, strings.HasPrefix(order.TrackingNumber, "TRK"))
	require.Equal(t, models.TrackingConfirmed, order.Status)
	require.Equal(t, models.SellerOrderPending, order.SellerStatus)
	require.Equal(t, now.Add(48*time.Hour), order.EstimatedDelivery)
	require.Equal(t, now, order.CreatedAt)
}

func TestBuildOrder_DoesNotTouchCartState(t *testing.T) {
	state := models.CartState{Items: []models.CartItem{
		{ID: 1, Name: "Electric Kettle", Price: 1800, Quantity: 2},
	}}

	order, err := BuildOrder(state, models.Customer{}, models.PaymentCOD, time.Now())
	require.NoError(t, err)

	// The order lines are a snapshot, not aliases of the cart.
	order.Items[0].Quantity = 99
	require.Equal(t, 2, state.Items[0].Quantity)
}

func TestBuildOrder_CarriesSizeVariant(t *testing.T) {
	state := models.CartState{Items: []models.CartItem{
		{ID: 19, Name: "Smart TV", Price: 89000, Quantity: 1, SelectedSize: "55\""},
	}}

	order, err := BuildOrder(state, models.Customer{}, models.PaymentFonePay, time.Now())
	require.NoError(t, err)
	require.Equal(t, "55\"", order.Items[0].SelectedSize)
}
