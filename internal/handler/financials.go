package handler

import (
	"net/http"

	"campusbuild/internal/finance"
	"campusbuild/internal/models"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
)

type FinancialHandler struct{}

// GetSummary recomputes the rollup from current rows on every call; nothing
// here is cached or persisted.
func (h *FinancialHandler) GetSummary(c *gin.Context) {
	var orders []models.Order
	if err := database.DB.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	var employees []models.Employee
	if err := database.DB.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}

	summary := finance.Summarize(orders, employees)

	type orderRow struct {
		ID            uint    `json:"id"`
		OrderRef      string  `json:"order_ref"`
		Status        string  `json:"status"`
		PaymentStatus string  `json:"payment_status"`
		Total         float64 `json:"total"`
		ComponentCost float64 `json:"component_cost"`
		HandlerFee    float64 `json:"handler_fee"`
		Profit        float64 `json:"profit"`
	}
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		if o.Status != models.StatusCompleted {
			continue
		}
		rows = append(rows, orderRow{
			ID:            o.ID,
			OrderRef:      o.OrderRef,
			Status:        o.Status,
			PaymentStatus: o.PaymentStatus,
			Total:         o.Total,
			ComponentCost: o.ComponentCost,
			HandlerFee:    o.HandlerFee,
			Profit:        finance.OrderProfit(o),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"orders":  rows,
	})
}
