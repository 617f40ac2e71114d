package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cart"
)

func newCartRouter(store *cart.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cart", GetCart(store))
	r.POST("/cart", AddCartItem(store))
	r.PUT("/cart", UpdateCartItem(store))
	r.DELETE("/cart/:id", RemoveCartItem(store))
	r.DELETE("/cart", ClearCart(store))
	return r
}

type cartPayload struct {
	Items []struct {
		ID       int `json:"id"`
		Quantity int `json:"quantity"`
	} `json:"items"`
	Totals struct {
		Subtotal    int `json:"subtotal"`
		DeliveryFee int `json:"delivery_fee"`
		Total       int `json:"total"`
	} `json:"totals"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, session, body string) (*httptest.ResponseRecorder, cartPayload) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload cartPayload
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func TestGetCart_IssuesSessionWhenMissing(t *testing.T) {
	r := newCartRouter(cart.NewStore())

	w, payload := doJSON(t, r, http.MethodGet, "/cart", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(SessionHeader))
	require.Empty(t, payload.Items)
	require.Equal(t, 200, payload.Totals.DeliveryFee)
}

func TestAddCartItem_AccumulatesAcrossRequests(t *testing.T) {
	r := newCartRouter(cart.NewStore())
	session := "sess-accumulate"

	body := `{"id":1,"name":"Samsung Front Load Washer","price":55000,"quantity":1}`
	w, _ := doJSON(t, r, http.MethodPost, "/cart", session, body)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, session, w.Header().Get(SessionHeader))

	w, payload := doJSON(t, r, http.MethodPost, "/cart", session, body)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, payload.Items, 1)
	require.Equal(t, 2, payload.Items[0].Quantity)
	require.Equal(t, 110000, payload.Totals.Subtotal)
	require.Equal(t, 0, payload.Totals.DeliveryFee)
}

func TestAddCartItem_RejectsInvalidInput(t *testing.T) {
	r := newCartRouter(cart.NewStore())

	w, _ := doJSON(t, r, http.MethodPost, "/cart", "sess-x", `{"id":1,"name":"Kettle","price":0,"quantity":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/cart", "sess-x", `{"name":"Kettle","price":1800,"quantity":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItem_ZeroQuantityRemovesLine(t *testing.T) {
	r := newCartRouter(cart.NewStore())
	session := "sess-update"

	doJSON(t, r, http.MethodPost, "/cart", session, `{"id":2,"name":"Electric Kettle","price":1800,"quantity":2}`)

	w, payload := doJSON(t, r, http.MethodPut, "/cart", session, `{"id":2,"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, payload.Items)
}

func TestRemoveCartItem_BySizeVariant(t *testing.T) {
	r := newCartRouter(cart.NewStore())
	session := "sess-remove"

	doJSON(t, r, http.MethodPost, "/cart", session, `{"id":19,"name":"Smart TV","price":89000,"quantity":1,"selectedSize":"55 inch"}`)
	doJSON(t, r, http.MethodPost, "/cart", session, `{"id":19,"name":"Smart TV","price":65000,"quantity":1,"selectedSize":"43 inch"}`)

	w, payload := doJSON(t, r, http.MethodDelete, "/cart/19?size=55+inch", session, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, payload.Items, 1)

	// Removing something that is not in the cart succeeds and changes nothing.
	w, payload = doJSON(t, r, http.MethodDelete, "/cart/999", session, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, payload.Items, 1)
}

func TestClearCart_EmptiesSession(t *testing.T) {
	r := newCartRouter(cart.NewStore())
	session := "sess-clear"

	doJSON(t, r, http.MethodPost, "/cart", session, `{"id":1,"name":"Washer","price":55000,"quantity":1}`)

	w, payload := doJSON(t, r, http.MethodDelete, "/cart", session, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, payload.Items)
	require.Equal(t, 0, payload.Totals.Subtotal)
}
