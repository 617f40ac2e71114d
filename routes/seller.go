package routes

import (
	"github.com/gin-gonic/gin"

	sellerControllers "github.com/Sudippandey619/EcommerceSite-Homeappliance/controllers/seller"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/middleware"
)

// SetupSellerRoutes registers the seller panel. Everything except login and
// signup requires a valid session token.
func SetupSellerRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/seller/auth")
	{
		authGroup.POST("/login", sellerControllers.Login(deps.DB))
		authGroup.POST("/signup", sellerControllers.Signup(deps.DB))
	}

	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateSellerToken(deps.Cache))
	{
		sellerGroup.POST("/logout", sellerControllers.Logout(deps.Cache))

		// ──────────────── Profile ────────────────
		sellerGroup.GET("/profile", sellerControllers.GetProfile(deps.DB))
		sellerGroup.PUT("/profile", sellerControllers.UpdateProfile(deps.DB))

		// ──────────────── Dashboard ────────────────
		sellerGroup.GET("/dashboard", sellerControllers.Dashboard(deps.DB))

		// ──────────────── Product Management ────────────────
		productGroup := sellerGroup.Group("/products")
		{
			productGroup.GET("", sellerControllers.ListProducts(deps.DB))
			productGroup.POST("", sellerControllers.CreateProduct(deps.DB))
			productGroup.PUT("/:id", sellerControllers.UpdateProduct(deps.DB))
			productGroup.DELETE("/:id", sellerControllers.DeleteProduct(deps.DB))
			productGroup.GET("/export-excel", sellerControllers.ExportProductsToExcel(deps.DB))
		}

		// ──────────────── Order Management ────────────────
		orderGroup := sellerGroup.Group("/orders")
		{
			orderGroup.GET("", sellerControllers.ListOrders(deps.DB))
			orderGroup.PUT("/:id/status", sellerControllers.UpdateOrderStatus(deps.DB))
		}
	}
}
