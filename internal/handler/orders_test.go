package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campusbuild/internal/models"
	"campusbuild/internal/realtime"
	"campusbuild/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.Order{},
		&models.OrderItem{},
		&models.Consultation{},
	))
	database.DB = db
}

func putJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func orderRouter(h *OrderHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/orders/:id/payment", h.UpdatePaymentStatus)
	r.PUT("/orders/:id/costs", h.UpdateCosts)
	r.PUT("/orders/:id/deadline", h.UpdateDeadline)
	return r
}

// seedOrder stores an order with every axis deliberately non-default, so any
// clobbered field shows up in the reloaded row.
func seedOrder(t *testing.T, assignedID *uint) models.Order {
	t.Helper()
	order := models.NewCustomOrder(
		models.Contact{Name: "Priya", Email: "priya@example.com", Phone: "9840000001"},
		"Smart Helmet", "IoT", "Fall detection with an SOS trigger.", nil)
	order.OrderRef = "ORD-20260831-0001"
	order.Status = models.StatusCompleted
	order.DeliveryStatus = models.DeliveryDelivered
	order.Total = 500
	order.ComponentCost = 120
	order.HandlerFee = 30
	order.HandlerFeeStatus = models.HandlerFeeSent
	order.AssignedID = assignedID
	require.NoError(t, database.DB.Create(&order).Error)
	return order
}

func TestUpdatePaymentStatusLeavesOtherAxesUntouched(t *testing.T) {
	setupTestDB(t)
	emp := models.Employee{Name: "Kavya", Position: "Handler"}
	require.NoError(t, database.DB.Create(&emp).Error)
	order := seedOrder(t, &emp.ID)

	h := &OrderHandler{Hub: realtime.NewHub()}
	w := putJSON(t, orderRouter(h),
		fmt.Sprintf("/orders/%d/payment", order.ID), `{"payment_status":"Paid"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, database.DB.First(&got, order.ID).Error)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)

	// Every other axis keeps its value.
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, models.DeliveryDelivered, got.DeliveryStatus)
	assert.Equal(t, 500.0, got.Total)
	assert.Equal(t, 120.0, got.ComponentCost)
	assert.Equal(t, 30.0, got.HandlerFee)
	assert.Equal(t, models.HandlerFeeSent, got.HandlerFeeStatus)
	require.NotNil(t, got.AssignedID)
	assert.Equal(t, emp.ID, *got.AssignedID)
	assert.Equal(t, "Smart Helmet", got.ProjectTitle)
}

func TestUpdateCostsMergesOnlyProvidedFields(t *testing.T) {
	setupTestDB(t)
	order := seedOrder(t, nil)

	h := &OrderHandler{Hub: realtime.NewHub()}
	w := putJSON(t, orderRouter(h),
		fmt.Sprintf("/orders/%d/costs", order.ID), `{"component_cost":130}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, database.DB.First(&got, order.ID).Error)
	assert.Equal(t, 130.0, got.ComponentCost)
	assert.Equal(t, 500.0, got.Total)
	assert.Equal(t, 30.0, got.HandlerFee)
	assert.Equal(t, models.HandlerFeeSent, got.HandlerFeeStatus)
	assert.Equal(t, models.PaymentUnpaid, got.PaymentStatus)
}

func TestUpdateDeadlineNullClears(t *testing.T) {
	setupTestDB(t)
	order := seedOrder(t, nil)
	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, database.DB.Model(&order).Update("deadline", &due).Error)

	h := &OrderHandler{Hub: realtime.NewHub()}
	path := fmt.Sprintf("/orders/%d/deadline", order.ID)

	w := putJSON(t, orderRouter(h), path, `{"deadline":null}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, database.DB.First(&got, order.ID).Error)
	assert.Nil(t, got.Deadline)
	assert.Equal(t, models.StatusCompleted, got.Status)

	w = putJSON(t, orderRouter(h), path, `{"deadline":"2027-01-15"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, database.DB.First(&got, order.ID).Error)
	require.NotNil(t, got.Deadline)
	assert.Equal(t, "2027-01-15", got.Deadline.Format("2006-01-02"))

	w = putJSON(t, orderRouter(h), path, `{"deadline":"next week"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderRefsDerivedFromRowID(t *testing.T) {
	setupTestDB(t)

	first := models.NewCustomOrder(models.Contact{Name: "A"}, "Plant Monitor", "IoT", "Soil probes.", nil)
	second := models.NewCustomOrder(models.Contact{Name: "B"}, "Exam Proctor", "AI", "Gaze tracking.", nil)
	require.NoError(t, createOrderWithRef(&first))
	require.NoError(t, createOrderWithRef(&second))

	assert.Equal(t, orderRef(first.ID), first.OrderRef)
	assert.Equal(t, orderRef(second.ID), second.OrderRef)
	assert.NotEqual(t, first.OrderRef, second.OrderRef)

	// The stored row carries the derived ref, not the insert placeholder.
	var got models.Order
	require.NoError(t, database.DB.First(&got, first.ID).Error)
	assert.Equal(t, first.OrderRef, got.OrderRef)
}
