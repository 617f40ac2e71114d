package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cart"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

// SessionHeader carries the client-generated cart identity. A request without
// one gets a fresh id, echoed back on the response.
const SessionHeader = "X-Cart-Session"

type AddItemInput struct {
	ID           int    `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Price        int    `json:"price" binding:"required,min=1"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
	SelectedSize string `json:"selectedSize"`
}

type UpdateQuantityInput struct {
	ID           int    `json:"id" binding:"required"`
	Quantity     *int   `json:"quantity" binding:"required"`
	SelectedSize string `json:"selectedSize"`
}

func cartSession(c *gin.Context) string {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(SessionHeader, sessionID)
	return sessionID
}

func cartResponse(state models.CartState) gin.H {
	return gin.H{
		"items":  state.Items,
		"totals": cart.ComputeTotals(state),
	}
}

// GET /cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := store.Get(cartSession(c))
		c.JSON(http.StatusOK, cartResponse(state))
	}
}

// POST /cart
func AddCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		state := store.Dispatch(cartSession(c), cart.Action{
			Type: cart.AddItem,
			Item: models.CartItem{
				ID:           input.ID,
				Name:         input.Name,
				Price:        input.Price,
				Quantity:     input.Quantity,
				SelectedSize: input.SelectedSize,
			},
		})
		c.JSON(http.StatusOK, cartResponse(state))
	}
}

// PUT /cart replaces a line's quantity; zero or below removes the line.
func UpdateCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		state := store.Dispatch(cartSession(c), cart.Action{
			Type:         cart.UpdateQuantity,
			ID:           input.ID,
			SelectedSize: input.SelectedSize,
			Quantity:     *input.Quantity,
		})
		c.JSON(http.StatusOK, cartResponse(state))
	}
}

// DELETE /cart/:id?size=
// Removing a line that does not exist is a no-op, not an error.
func RemoveCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		state := store.Dispatch(cartSession(c), cart.Action{
			Type:         cart.RemoveItem,
			ID:           id,
			SelectedSize: c.Query("size"),
		})
		c.JSON(http.StatusOK, cartResponse(state))
	}
}

// DELETE /cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := store.Dispatch(cartSession(c), cart.Action{Type: cart.ClearCart})
		c.JSON(http.StatusOK, cartResponse(state))
	}
}
