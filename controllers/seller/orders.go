package sellerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /seller/orders?status=
// The seller panel reads the seller-side status vocabulary, not the customer
// tracking progression.
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")

		if status := c.Query("status"); status != "" && status != "all" {
			parsed, err := models.ParseSellerOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("seller_status = ?", parsed)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /seller/orders/:id/status
// Free-form administrative override: any of the five statuses may be assigned
// at any time, no ordering is enforced.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order id is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		newStatus, err := models.ParseSellerOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("seller_status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// GET /seller/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := c.GetString("seller_id")

		statusCounts := make(map[models.SellerOrderStatus]int64)
		for _, status := range []models.SellerOrderStatus{
			models.SellerOrderPending,
			models.SellerOrderProcessing,
			models.SellerOrderShipped,
			models.SellerOrderDelivered,
			models.SellerOrderCancelled,
		} {
			var count int64
			if err := db.Model(&models.Order{}).Where("seller_status = ?", status).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
				return
			}
			statusCounts[status] = count
		}

		var totalOrders int64
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
			return
		}

		var revenue int64
		row := db.Model(&models.Order{}).
			Where("seller_status <> ?", models.SellerOrderCancelled).
			Select("COALESCE(SUM(total), 0)").Row()
		if err := row.Scan(&revenue); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
			return
		}

		var totalProducts int64
		if err := db.Model(&models.SellerProduct{}).Where("seller_id = ?", sellerID).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_orders":   totalOrders,
			"total_revenue":  revenue,
			"total_products": totalProducts,
			"orders_by_status": gin.H{
				"pending":    statusCounts[models.SellerOrderPending],
				"processing": statusCounts[models.SellerOrderProcessing],
				"shipped":    statusCounts[models.SellerOrderShipped],
				"delivered":  statusCounts[models.SellerOrderDelivered],
				"cancelled":  statusCounts[models.SellerOrderCancelled],
			},
		})
	}
}
