package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

func addAction(item models.CartItem) Action {
	return Action{Type: AddItem, Item: item}
}

func TestReduce_AddItemAccumulatesQuantity(t *testing.T) {
	state := models.CartState{}
	state = Reduce(state, addAction(models.CartItem{ID: 1, Name: "Samsung Front Load Washer", Price: 55000, Quantity: 2}))
	state = Reduce(state, addAction(models.CartItem{ID: 1, Name: "Samsung Front Load Washer", Price: 55000, Quantity: 3}))

	require.Len(t, state.Items, 1)
	require.Equal(t, 5, state.Items[0].Quantity)
}

func TestReduce_AddItemDistinctSizesAreDistinctLines(t *testing.T) {
	state := models.CartState{}
	state = Reduce(state, addAction(models.CartItem{ID: 19, Name: "Smart TV", Price: 89000, Quantity: 1, SelectedSize: "55\""}))
	state = Reduce(state, addAction(models.CartItem{ID: 19, Name: "Smart TV", Price: 65000, Quantity: 1, SelectedSize: "43\""}))

	require.Len(t, state.Items, 2)
	require.Equal(t, "55\"", state.Items[0].SelectedSize)
	require.Equal(t, "43\"", state.Items[1].SelectedSize)
}

func TestReduce_AddItemPreservesInsertionOrder(t *testing.T) {
	state := models.CartState{}
	state = Reduce(state, addAction(models.CartItem{ID: 3, Name: "Fridge", Price: 125000, Quantity: 1}))
	state = Reduce(state, addAction(models.CartItem{ID: 1, Name: "Washer", Price: 55000, Quantity: 1}))
	state = Reduce(state, addAction(models.CartItem{ID: 2, Name: "Kettle", Price: 1800, Quantity: 1}))

	require.Equal(t, []int{3, 1, 2}, []int{state.Items[0].ID, state.Items[1].ID, state.Items[2].ID})
}

func TestReduce_UpdateQuantityReplacesNotAdds(t *testing.T) {
	state := models.CartState{Items: []models.CartItem{{ID: 1, Name: "Washer", Price: 55000, Quantity: 2}}}
	state = Reduce(state, Action{Type: UpdateQuantity, ID: 1, Quantity: 7})

	require.Len(t, state.Items, 1)
	require.Equal(t, 7, state.Items[0].Quantity)
}

func TestReduce_UpdateQuantityToZeroRemovesLine(t *testing.T) {
	state := models.CartState{Items: []models.CartItem{
		{ID: 1, Name: "Washer", Price: 55000, Quantity: 2},
		{ID: 2, Name: "Kettle", Price: 1800, Quantity: 1},
	}}

	state = Reduce(state, Action{Type: UpdateQuantity, ID: 1, Quantity: 0})
	require.Len(t, state.Items, 1)
	require.Equal(t, 2, state.Items[0].ID)

	state = Reduce(state, Action{Type: UpdateQuantity, ID: 2, Quantity: -3})
	require.Empty(t, state.Items)
}

func TestReduce_RemoveItemAbsentKeyIsNoOp(t *testing.T) {
	original := models.CartState{Items: []models.CartItem{
		{ID: 1, Name: "Washer", Price: 55000, Quantity: 2},
	}}

	state := Reduce(original, Action{Type: RemoveItem, ID: 99})
	require.Equal(t, original.Items, state.Items)

	// Same id but a different size variant must not match the plain line.
	state = Reduce(original, Action{Type: RemoveItem, ID: 1, SelectedSize: "XL"})
	require.Equal(t, original.Items, state.Items)
}

func TestReduce_RemoveItemMatchesSizeVariant(t *testing.T) {
	state := models.CartState{Items: []models.CartItem{
		{ID: 19, Name: "Smart TV", Price: 89000, Quantity: 1, SelectedSize: "55\""},
		{ID: 19, Name: "Smart TV", Price: 65000, Quantity: 1, SelectedSize: "43\""},
	}}

	state = Reduce(state, Action{Type: RemoveItem, ID: 19, SelectedSize: "55\""})
	require.Len(t, state.Items, 1)
	require.Equal(t, "43\"", state.Items[0].SelectedSize)
}

func TestReduce_ClearCart(t *testing.T) {
	state := models.CartState{Items: []models.CartItem{
		{ID: 1, Name: "Washer", Price: 55000, Quantity: 2},
		{ID: 2, Name: "Kettle", Price: 1800, Quantity: 1},
	}}

	state = Reduce(state, Action{Type: ClearCart})
	require.Empty(t, state.Items)

	// Clearing twice stays empty.
	state = Reduce(state, Action{Type: ClearCart})
	require.Empty(t, state.Items)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	original := models.CartState{Items: []models.CartItem{
		{ID: 1, Name: "Washer", Price: 55000, Quantity: 2},
	}}

	_ = Reduce(original, Action{Type: UpdateQuantity, ID: 1, Quantity: 9})
	require.Equal(t, 2, original.Items[0].Quantity)

	_ = Reduce(original, addAction(models.CartItem{ID: 1, Name: "Washer", Price: 55000, Quantity: 4}))
	require.Equal(t, 2, original.Items[0].Quantity)
}

func TestStore_DispatchIsolatesSessions(t *testing.T) {
	store := NewStore()

	store.Dispatch("session-a", addAction(models.CartItem{ID: 1, Name: "Washer", Price: 55000, Quantity: 1}))
	store.Dispatch("session-b", addAction(models.CartItem{ID: 2, Name: "Kettle", Price: 1800, Quantity: 3}))

	require.Len(t, store.Get("session-a").Items, 1)
	require.Equal(t, 2, store.Get("session-b").Items[0].ID)
	require.Empty(t, store.Get("session-c").Items)
}
