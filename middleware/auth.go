package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/auth"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cache"
)

// ValidateSellerToken guards the seller panel routes. A missing, invalid or
// revoked token answers 401; the client is expected to send the user back to
// the seller login view.
func ValidateSellerToken(redisCache *cache.Redis) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		sellerID, err := auth.ParseSellerToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if redisCache.TokenRevoked(c.Request.Context(), tokenString) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has been logged out"})
			c.Abort()
			return
		}

		c.Set("seller_id", sellerID)
		c.Set("seller_token", tokenString)
		c.Next()
	}
}
