package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TrackingUpdate is one frame of the tracking stream.
type TrackingUpdate struct {
	OrderID string                `json:"order_id"`
	Status  models.TrackingStatus `json:"status"`
	Step    int                   `json:"step"`
	Final   bool                  `json:"final"`
}

// GET /orders/:id/track (websocket)
// Streams the simulated delivery progression: one step per interval, starting
// from the order's stored status, stopping at delivered or when the client
// disconnects. The advancement is cosmetic and is not written back.
func TrackOrder(db *gorm.DB, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		err := db.Where("id = ? OR tracking_number = ?", c.Param("id"), c.Param("id")).First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// Detect client disconnect by draining the read side.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		status := order.Status
		if err := sendUpdate(conn, order.ID, status); err != nil {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for !status.Terminal() {
			select {
			case <-done:
				return
			case <-ticker.C:
				status = status.Next()
				if err := sendUpdate(conn, order.ID, status); err != nil {
					return
				}
			}
		}
	}
}

func sendUpdate(conn *websocket.Conn, orderID string, status models.TrackingStatus) error {
	update := TrackingUpdate{
		OrderID: orderID,
		Status:  status,
		Step:    status.Index(),
		Final:   status.Terminal(),
	}
	if err := conn.WriteJSON(update); err != nil {
		log.Printf("tracking stream closed for order %s: %v", orderID, err)
		return err
	}
	return nil
}
