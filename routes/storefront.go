package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Sudippandey619/EcommerceSite-Homeappliance/controllers/cart"
	catalogControllers "github.com/Sudippandey619/EcommerceSite-Homeappliance/controllers/catalog"
	checkoutControllers "github.com/Sudippandey619/EcommerceSite-Homeappliance/controllers/checkout"
	orderControllers "github.com/Sudippandey619/EcommerceSite-Homeappliance/controllers/order"
)

// SetupStorefrontRoutes registers the public shopping endpoints.
func SetupStorefrontRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", catalogControllers.ListProducts())
	r.GET("/products/search", catalogControllers.SearchProducts(deps.Cache))
	r.GET("/products/facets", catalogControllers.GetFacets())
	r.GET("/category/:name", catalogControllers.BrowseCategory())

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(deps.Carts))
		cartGroup.POST("", cartControllers.AddCartItem(deps.Carts))
		cartGroup.PUT("", cartControllers.UpdateCartItem(deps.Carts))
		cartGroup.DELETE("/:id", cartControllers.RemoveCartItem(deps.Carts))
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))
	}

	// ──────────────── Checkout & Tracking ────────────────
	r.POST("/checkout", checkoutControllers.PlaceOrder(deps.DB, deps.Carts, deps.PaymentDelay))
	r.GET("/orders/:id", orderControllers.GetOrder(deps.DB))
	r.GET("/orders/:id/track", orderControllers.TrackOrder(deps.DB, deps.TrackInterval))
}
