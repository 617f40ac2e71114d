package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

func TestComputeTotals_EmptyCartStillPaysDelivery(t *testing.T) {
	totals := ComputeTotals(models.CartState{})

	require.Equal(t, 0, totals.Subtotal)
	require.Equal(t, StandardDeliveryFee, totals.DeliveryFee)
	require.Equal(t, StandardDeliveryFee, totals.Total)
}

func TestComputeTotals_ThresholdIsStrictlyGreater(t *testing.T) {
	// Exactly at the threshold still pays the fee; one rupee over is free.
	at := ComputeTotals(models.CartState{Items: []models.CartItem{{ID: 1, Price: 5000, Quantity: 1}}})
	require.Equal(t, 5000, at.Subtotal)
	require.Equal(t, 200, at.DeliveryFee)
	require.Equal(t, 5200, at.Total)

	over := ComputeTotals(models.CartState{Items: []models.CartItem{{ID: 1, Price: 5001, Quantity: 1}}})
	require.Equal(t, 5001, over.Subtotal)
	require.Equal(t, 0, over.DeliveryFee)
	require.Equal(t, 5001, over.Total)
}

func TestComputeTotals_SubtotalSumsLines(t *testing.T) {
	totals := ComputeTotals(models.CartState{Items: []models.CartItem{
		{ID: 1, Price: 1000, Quantity: 3},
	}})

	require.Equal(t, 3000, totals.Subtotal)
	require.Equal(t, 200, totals.DeliveryFee)
	require.Equal(t, 3200, totals.Total)
}

func TestComputeTotals_MultipleLines(t *testing.T) {
	totals := ComputeTotals(models.CartState{Items: []models.CartItem{
		{ID: 1, Price: 1800, Quantity: 2},
		{ID: 2, Price: 8500, Quantity: 1},
	}})

	require.Equal(t, 12100, totals.Subtotal)
	require.Equal(t, 0, totals.DeliveryFee)
	require.Equal(t, 12100, totals.Total)
}
