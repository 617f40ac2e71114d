package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackingStatus_AdvancesLinearly(t *testing.T) {
	status := TrackingConfirmed

	status = status.Next()
	require.Equal(t, TrackingProcessing, status)
	status = status.Next()
	require.Equal(t, TrackingShipped, status)
	status = status.Next()
	require.Equal(t, TrackingDelivered, status)
	require.True(t, status.Terminal())

	// Delivered is terminal; further advancement is a no-op.
	require.Equal(t, TrackingDelivered, status.Next())
}

func TestTrackingStatus_ReachesTerminalInThreeSteps(t *testing.T) {
	status := TrackingConfirmed
	for i := 0; i < 3; i++ {
		require.False(t, status.Terminal())
		status = status.Next()
	}
	require.True(t, status.Terminal())
}

func TestTrackingStatus_Index(t *testing.T) {
	require.Equal(t, 0, TrackingConfirmed.Index())
	require.Equal(t, 1, TrackingProcessing.Index())
	require.Equal(t, 2, TrackingShipped.Index())
	require.Equal(t, 3, TrackingDelivered.Index())

	// Unknown values fall back to the start of the progression.
	require.Equal(t, 0, TrackingStatus("bogus").Index())
}

func TestTrackingSteps_ReturnsCopy(t *testing.T) {
	steps := TrackingSteps()
	require.Equal(t, []TrackingStatus{TrackingConfirmed, TrackingProcessing, TrackingShipped, TrackingDelivered}, steps)

	steps[0] = TrackingDelivered
	require.Equal(t, TrackingConfirmed, TrackingSteps()[0])
}

func TestParseSellerOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		status, err := ParseSellerOrderStatus(valid)
		require.NoError(t, err)
		require.Equal(t, SellerOrderStatus(valid), status)
	}

	// Case-insensitive, like the rest of the request parsing.
	status, err := ParseSellerOrderStatus("Cancelled")
	require.NoError(t, err)
	require.Equal(t, SellerOrderCancelled, status)

	_, err = ParseSellerOrderStatus("confirmed")
	require.Error(t, err, "the tracking vocabulary is not valid on the seller side")

	_, err = ParseSellerOrderStatus("")
	require.Error(t, err)
}

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"khalti", "esewa", "ime", "fonepay", "bank", "cod"} {
		method, err := ParsePaymentMethod(valid)
		require.NoError(t, err)
		require.Equal(t, PaymentMethod(valid), method)
	}

	_, err := ParsePaymentMethod("paypal")
	require.Error(t, err)
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	require.Equal(t, SortRelevance, key)

	key, err = ParseSortKey("price-low")
	require.NoError(t, err)
	require.Equal(t, SortPriceLow, key)

	_, err = ParseSortKey("newest")
	require.Error(t, err)
}

func TestCartItem_Matches(t *testing.T) {
	item := CartItem{ID: 19, SelectedSize: "55\""}

	require.True(t, item.Matches(19, "55\""))
	require.False(t, item.Matches(19, ""))
	require.False(t, item.Matches(20, "55\""))
}
