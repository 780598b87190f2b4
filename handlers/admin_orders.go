package handlers

import (
	"net/http"
	"time"

	"bam-burgers-api/config"
	"bam-burgers-api/loyalty"
	"bam-burgers-api/models"
	"bam-burgers-api/realtime"
	"bam-burgers-api/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminListOrders returns orders with a per-status dashboard summary and
// delivered revenue
func AdminListOrders(c *gin.Context) {
	var orderRows []models.Order
	query := config.DB.Preload("Items")

	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if orderType := c.Query("order_type"); orderType != "" {
		query = query.Where("order_type = ?", orderType)
	}

	query.Order("created_at desc").Find(&orderRows)

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orderRows {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.TotalAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orderRows),
		"orders":        orderRows,
	})
}

// AdminGetOrder returns one order with line items
func AdminGetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus advances an order through its lifecycle. Invalid
// transitions are rejected, never silently applied. Reaching delivered
// accrues loyalty points exactly once.
func AdminUpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, statemachine.ActorAdmin); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	now := time.Now()
	updates := map[string]any{"status": req.Status}
	if req.Status == models.StatusAccepted {
		updates["accepted_at"] = now
	}
	if statemachine.IsTerminal(req.Status) {
		updates["completed_at"] = now
	}

	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}
	order.Status = req.Status

	if req.Status == models.StatusDelivered {
		ls, err := loyaltySettings()
		if err != nil {
			Log.Error("loyalty settings unavailable, accrual skipped",
				zap.String("order_number", order.OrderNumber), zap.Error(err))
		} else if err := loyalty.Accrue(config.DB, &order, ls.PointsPerDollar); err != nil {
			Log.Error("loyalty accrual failed", zap.Error(err))
		}
	}

	Hub.Publish(realtime.Event{Table: "orders", Action: realtime.ActionUpdate, RowID: order.ID, Payload: order})

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"order_number":    order.OrderNumber,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	})
}

// AdminCancelOrder cancels an order from any non-terminal state
func AdminCancelOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, statemachine.ActorAdmin); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Cannot cancel order",
			"reason":         err.Error(),
			"current_status": order.Status,
		})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&order).Updates(map[string]any{
		"status":       models.StatusCancelled,
		"completed_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}
	order.Status = models.StatusCancelled
	Hub.Publish(realtime.Event{Table: "orders", Action: realtime.ActionUpdate, RowID: order.ID, Payload: order})

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order_number": order.OrderNumber})
}
