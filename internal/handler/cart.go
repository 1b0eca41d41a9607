package handler

import (
	"net/http"
	"strconv"

	"campusbuild/internal/cart"
	"campusbuild/internal/metrics"
	"campusbuild/internal/models"
	"campusbuild/internal/realtime"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the storefront's cart session id. The server issues
// one on first contact; the browser echoes it back on every cart call.
const SessionHeader = "X-Session-ID"

type CartHandler struct {
	Carts *cart.Store
	Hub   *realtime.Hub
}

func (h *CartHandler) session(c *gin.Context) string {
	sid := c.GetHeader(SessionHeader)
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Header(SessionHeader, sid)
	return sid
}

func (h *CartHandler) cartResponse(crt *cart.Cart) gin.H {
	subtotal, taxes, total := crt.Totals()
	return gin.H{
		"items":    crt.Items(),
		"subtotal": subtotal,
		"taxes":    taxes,
		"total":    total,
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	crt := h.Carts.Get(h.session(c))
	c.JSON(http.StatusOK, h.cartResponse(crt))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ProjectID uint `json:"project_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Price and title come from the catalog, never from the client.
	var project models.Project
	if err := database.DB.Where("is_active = ?", true).First(&project, req.ProjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	crt := h.Carts.Get(h.session(c))
	added := crt.Add(cart.Item{ProjectID: project.ID, Title: project.Title, Price: project.Price})

	resp := h.cartResponse(crt)
	resp["added"] = added // false when the item was already in the cart
	c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	crt := h.Carts.Get(h.session(c))
	crt.Remove(uint(id))
	c.JSON(http.StatusOK, h.cartResponse(crt))
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Deadline      string `json:"deadline"` // YYYY-MM-DD
}

func (h *CartHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline, expected YYYY-MM-DD"})
		return
	}

	sid := h.session(c)
	crt := h.Carts.Get(sid)

	order, err := crt.Checkout(
		models.Contact{Name: req.CustomerName, Email: req.CustomerEmail, Phone: req.CustomerPhone, Address: req.Address},
		deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	// Order, its item rows and the ref derived from the row id commit together.
	if err := createOrderWithRef(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// Clear only after the order is stored.
	crt.Clear()

	metrics.OrdersCreated.WithLabelValues("catalog").Inc()
	h.Hub.Publish(realtime.Event{Collection: realtime.CollectionOrders, Action: realtime.ActionCreate, ID: order.ID})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Order placed successfully",
		"order_ref": order.OrderRef,
		"total":     order.Total,
	})
}
