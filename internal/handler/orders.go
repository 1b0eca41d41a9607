package handler

import (
	"net/http"
	"strconv"

	"campusbuild/internal/models"
	"campusbuild/internal/realtime"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Hub *realtime.Hub
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	query := database.DB.Preload("Items").Preload("Assigned").Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if payment := c.Query("payment_status"); payment != "" {
		query = query.Where("payment_status = ?", payment)
	}
	if kind := c.Query("kind"); kind == "custom" {
		query = query.Where("is_custom_order = ?", true)
	} else if kind == "catalog" {
		query = query.Where("is_custom_order = ?", false)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// patchOrder applies a field-scoped merge and broadcasts the change. Partial
// updates must never clobber fields outside the map.
func (h *OrderHandler) patchOrder(c *gin.Context, fields map[string]interface{}) {
	id := c.Param("id")

	var order models.Order
	if err := database.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := database.DB.Model(&order).Updates(fields).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionOrders, Action: realtime.ActionUpdate, ID: order.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != models.StatusCompleted && req.Status != models.StatusNotCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	h.patchOrder(c, map[string]interface{}{"status": req.Status})
}

func (h *OrderHandler) UpdateDeliveryStatus(c *gin.Context) {
	var req struct {
		DeliveryStatus string `json:"delivery_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DeliveryStatus != models.DeliveryDelivered && req.DeliveryStatus != models.DeliveryNotDelivered {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery status"})
		return
	}
	h.patchOrder(c, map[string]interface{}{"delivery_status": req.DeliveryStatus})
}

func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	var req struct {
		PaymentStatus string `json:"payment_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PaymentStatus != models.PaymentPaid && req.PaymentStatus != models.PaymentUnpaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
		return
	}
	h.patchOrder(c, map[string]interface{}{"payment_status": req.PaymentStatus})
}

// UpdateCosts merges only the money fields present in the request body.
func (h *OrderHandler) UpdateCosts(c *gin.Context) {
	var req struct {
		Total            *float64 `json:"total"`
		ComponentCost    *float64 `json:"component_cost"`
		HandlerFee       *float64 `json:"handler_fee"`
		HandlerFeeStatus *string  `json:"handler_fee_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if req.Total != nil {
		fields["total"] = *req.Total
	}
	if req.ComponentCost != nil {
		fields["component_cost"] = *req.ComponentCost
	}
	if req.HandlerFee != nil {
		fields["handler_fee"] = *req.HandlerFee
	}
	if req.HandlerFeeStatus != nil {
		if *req.HandlerFeeStatus != models.HandlerFeeSent && *req.HandlerFeeStatus != models.HandlerFeeNotSent {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid handler fee status"})
			return
		}
		fields["handler_fee_status"] = *req.HandlerFeeStatus
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No cost fields provided"})
		return
	}

	h.patchOrder(c, fields)
}

// AssignOrder links an employee by id; a null assigned_id unassigns.
func (h *OrderHandler) AssignOrder(c *gin.Context) {
	var req struct {
		AssignedID *uint `json:"assigned_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AssignedID != nil {
		var employee models.Employee
		if err := database.DB.First(&employee, *req.AssignedID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Employee not found"})
			return
		}
	}

	h.patchOrder(c, map[string]interface{}{"assigned_id": req.AssignedID})
}

// UpdateDeadline sets the deadline; a null or empty value clears it, matching
// the nullable column the same way a null assigned_id unassigns.
func (h *OrderHandler) UpdateDeadline(c *gin.Context) {
	var req struct {
		Deadline *string `json:"deadline"` // YYYY-MM-DD
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var raw string
	if req.Deadline != nil {
		raw = *req.Deadline
	}
	deadline, err := parseDeadline(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline, expected YYYY-MM-DD"})
		return
	}

	h.patchOrder(c, map[string]interface{}{"deadline": deadline})
}

// DeleteOrder is terminal and irreversible; the route is superadmin-gated.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	tx := database.DB.Begin()
	if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	if err := tx.Delete(&models.Order{}, id).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	tx.Commit()

	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionOrders, Action: realtime.ActionDelete, ID: uint(id)})
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
