package sellerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

// UpdateProfileInput carries a partial profile update; nil fields are left
// untouched. Email is the account key and cannot be changed here.
type UpdateProfileInput struct {
	Name      *string `json:"name"`
	StoreName *string `json:"storeName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Avatar    *string `json:"avatar"`
}

// MergeProfile applies a partial update onto an existing seller record.
func MergeProfile(seller models.Seller, input UpdateProfileInput) models.Seller {
	if input.Name != nil {
		seller.Name = *input.Name
	}
	if input.StoreName != nil {
		seller.StoreName = *input.StoreName
	}
	if input.Phone != nil {
		seller.Phone = *input.Phone
	}
	if input.Address != nil {
		seller.Address = *input.Address
	}
	if input.Avatar != nil {
		seller.Avatar = *input.Avatar
	}
	return seller
}

// GET /seller/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetString("seller_id")

		var seller models.Seller
		if err := db.First(&seller, "id = ?", sellerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
			return
		}
		c.JSON(http.StatusOK, seller)
	}
}

// PUT /seller/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetString("seller_id")

		var seller models.Seller
		if err := db.First(&seller, "id = ?", sellerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		seller = MergeProfile(seller, input)
		if err := db.Save(&seller).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, seller)
	}
}
