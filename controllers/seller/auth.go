package sellerControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/auth"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cache"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	StoreName       string `json:"storeName" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Address         string `json:"address" binding:"required"`
}

// POST /seller/auth/login
// Demo authentication: any non-empty credentials are accepted. An unknown
// email gets a fabricated store identity. Replace with verified credentials
// before shipping a real backend; the session interface stays the same.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var seller models.Seller
		err := db.Where("email = ?", req.Email).First(&seller).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seller = models.Seller{
				ID:        "seller-" + uuid.NewString(),
				Name:      "Rajesh Sharma",
				Email:     req.Email,
				StoreName: "Sharma Electronics",
				Phone:     "+977 9841234567",
				Address:   "Thamel, Kathmandu",
				Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop",
				CreatedAt: time.Now(),
			}
			if err := db.Create(&seller).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create seller"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up seller"})
			return
		}

		token, err := auth.IssueSellerToken(seller.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "seller": seller})
	}
}

// POST /seller/auth/signup
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.Seller
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}

		seller := models.Seller{
			ID:        "seller-" + uuid.NewString(),
			Name:      req.Name,
			Email:     req.Email,
			StoreName: req.StoreName,
			Phone:     req.Phone,
			Address:   req.Address,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&seller).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create seller"})
			return
		}

		token, err := auth.IssueSellerToken(seller.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": token, "seller": seller})
	}
}

// POST /seller/logout
func Logout(redisCache *cache.Redis) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.GetString("seller_token"); token != "" {
			redisCache.RevokeToken(c.Request.Context(), token, 24*time.Hour)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
