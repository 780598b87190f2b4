package handlers

import (
	"io"
	"net/http"
	"time"

	"bam-burgers-api/config"
	"bam-burgers-api/models"
	"bam-burgers-api/orders"
	"bam-burgers-api/realtime"
	"bam-burgers-api/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlaceOrder converts the submitted cart snapshot into a persisted order
func PlaceOrder(c *gin.Context) {
	website, err := Settings.Website()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	if website.MaintenanceMode || !website.OnlineOrdering {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Online ordering is currently unavailable"})
		return
	}

	var req orders.PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := Orders.Place(req)
	if err != nil {
		if isDomainError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		Log.Error("order placement failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order placed successfully",
		"order":        order,
		"order_number": order.OrderNumber,
	})
}

func findOrderByNumber(c *gin.Context) (*models.Order, bool) {
	var order models.Order
	err := config.DB.Preload("Items").
		Where("order_number = ?", c.Param("orderNumber")).
		First(&order).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return nil, false
	}
	return &order, true
}

// TrackOrder returns the current state of an order for the tracking view
func TrackOrder(c *gin.Context) {
	order, ok := findOrderByNumber(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// StreamOrder pushes status changes for one order as server-sent events.
// The client should still re-fetch on reconnect; delivery is best-effort.
func StreamOrder(c *gin.Context) {
	order, ok := findOrderByNumber(c)
	if !ok {
		return
	}

	events, unsubscribe := Hub.Subscribe("orders", order.ID)
	defer unsubscribe()

	c.SSEvent("order", order)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, open := <-events:
			if !open {
				return false
			}
			c.SSEvent("order", ev.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// CancelMyOrder lets the customer cancel from the tracking view. Only a
// pending order can be cancelled by the customer.
func CancelMyOrder(c *gin.Context) {
	order, ok := findOrderByNumber(c)
	if !ok {
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, statemachine.ActorCustomer); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Cannot cancel order",
			"reason":         err.Error(),
			"current_status": order.Status,
		})
		return
	}

	now := time.Now()
	if err := config.DB.Model(order).Updates(map[string]any{
		"status":       models.StatusCancelled,
		"completed_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}
	order.Status = models.StatusCancelled
	Hub.Publish(realtime.Event{Table: "orders", Action: realtime.ActionUpdate, RowID: order.ID, Payload: order})

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_number": order.OrderNumber})
}
