package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

// GET /orders/:id
// Order lookup for the tracking view. The id can be the order id or the
// tracking number.
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order id is required"})
			return
		}

		var order models.Order
		err := db.
			Preload("Items").
			Where("id = ? OR tracking_number = ?", id, id).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order": order,
			"steps": models.TrackingSteps(),
			"step":  order.Status.Index(),
		})
	}
}
