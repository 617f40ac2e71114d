package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cache"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cart"
)

// Deps bundles the collaborators handler closures capture.
type Deps struct {
	DB    *gorm.DB
	Carts *cart.Store
	Cache *cache.Redis

	// PaymentDelay simulates the payment gateway round-trip at checkout.
	PaymentDelay time.Duration
	// TrackInterval is the pace of the simulated tracking progression.
	TrackInterval time.Duration
}

// SetupRoutes is the single entry-point that wires up the storefront and
// seller route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupStorefrontRoutes(r, deps)
	SetupSellerRoutes(r, deps)

	// Unknown paths point the client back to the storefront root.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "redirect": "/"})
	})
}
