// Package cart holds the shopping cart state machine. All mutation goes
// through Reduce, a pure transition function; Store serializes dispatches for
// concurrent HTTP handlers.
package cart

import (
	"sync"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

type ActionType string

const (
	AddItem        ActionType = "ADD_ITEM"
	RemoveItem     ActionType = "REMOVE_ITEM"
	UpdateQuantity ActionType = "UPDATE_QUANTITY"
	ClearCart      ActionType = "CLEAR_CART"
)

// Action is one cart mutation. Item is read for AddItem; ID, SelectedSize and
// Quantity are read for RemoveItem/UpdateQuantity.
type Action struct {
	Type         ActionType
	Item         models.CartItem
	ID           int
	SelectedSize string
	Quantity     int
}

// Reduce applies one action to a cart state and returns the next state. It
// never fails: unknown actions and removals of absent lines leave the state
// unchanged. The input state is not mutated.
func Reduce(state models.CartState, action Action) models.CartState {
	switch action.Type {
	case AddItem:
		for i, line := range state.Items {
			if line.Matches(action.Item.ID, action.Item.SelectedSize) {
				items := copyItems(state.Items)
				items[i].Quantity += action.Item.Quantity
				return models.CartState{Items: items}
			}
		}
		items := copyItems(state.Items)
		return models.CartState{Items: append(items, action.Item)}

	case RemoveItem:
		items := make([]models.CartItem, 0, len(state.Items))
		for _, line := range state.Items {
			if !line.Matches(action.ID, action.SelectedSize) {
				items = append(items, line)
			}
		}
		return models.CartState{Items: items}

	case UpdateQuantity:
		// Quantity <= 0 removes the line instead of leaving a zero entry.
		if action.Quantity <= 0 {
			return Reduce(state, Action{Type: RemoveItem, ID: action.ID, SelectedSize: action.SelectedSize})
		}
		items := copyItems(state.Items)
		for i, line := range items {
			if line.Matches(action.ID, action.SelectedSize) {
				items[i].Quantity = action.Quantity
			}
		}
		return models.CartState{Items: items}

	case ClearCart:
		return models.CartState{}

	default:
		return state
	}
}

func copyItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// Store keeps one cart per storefront session, created empty on first use.
type Store struct {
	mu    sync.Mutex
	carts map[string]models.CartState
}

func NewStore() *Store {
	return &Store{carts: make(map[string]models.CartState)}
}

// Dispatch applies an action to the session's cart and returns the new state.
func (s *Store) Dispatch(sessionID string, action Action) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := Reduce(s.carts[sessionID], action)
	s.carts[sessionID] = next
	return next
}

// Get returns the session's current cart state.
func (s *Store) Get(sessionID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[sessionID]
}
