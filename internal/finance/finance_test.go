package finance

import (
	"testing"

	"campusbuild/internal/models"

	"github.com/stretchr/testify/assert"
)

func salary(v float64) *float64 { return &v }

func TestSummarizeWorkedExample(t *testing.T) {
	employees := []models.Employee{
		{Name: "A", Salary: salary(1000)},
		{Name: "B"}, // untracked salary counts as zero
	}
	orders := []models.Order{
		{
			Status:           models.StatusCompleted,
			PaymentStatus:    models.PaymentPaid,
			Total:            500,
			ComponentCost:    100,
			HandlerFee:       100,
			HandlerFeeStatus: models.HandlerFeeSent,
		},
	}

	s := Summarize(orders, employees)

	assert.Equal(t, 1, s.CompletedOrders)
	assert.Equal(t, 1, s.PaidCompletedOrders)
	assert.Equal(t, 500.0, s.TotalRevenue)
	assert.Equal(t, 100.0, s.TotalComponentCost)
	assert.Equal(t, 100.0, s.TotalHandlerFees)
	assert.Equal(t, 1000.0, s.TotalSalaryCost)
	assert.Equal(t, -700.0, s.NetProfit)
}

func TestSummarizeZeroOrders(t *testing.T) {
	employees := []models.Employee{{Name: "A", Salary: salary(1200)}}

	s := Summarize(nil, employees)

	assert.Equal(t, 0.0, s.TotalRevenue)
	assert.Equal(t, 0.0, s.TotalComponentCost)
	assert.Equal(t, 0.0, s.TotalHandlerFees)
	assert.Equal(t, -1200.0, s.NetProfit)
}

func TestSummarizeCountsOnlyPaidAndCompleted(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusCompleted, PaymentStatus: models.PaymentUnpaid, Total: 300},
		{Status: models.StatusNotCompleted, PaymentStatus: models.PaymentPaid, Total: 400},
		{Status: models.StatusCompleted, PaymentStatus: models.PaymentPaid, Total: 250},
		// Fee entered but never sent: excluded from the fee total.
		{Status: models.StatusCompleted, PaymentStatus: models.PaymentPaid, Total: 100, HandlerFee: 50, HandlerFeeStatus: models.HandlerFeeNotSent},
	}

	s := Summarize(orders, nil)

	assert.Equal(t, 3, s.CompletedOrders)
	assert.Equal(t, 2, s.PaidCompletedOrders)
	assert.Equal(t, 350.0, s.TotalRevenue)
	assert.Equal(t, 0.0, s.TotalHandlerFees)
	assert.Equal(t, 350.0, s.NetProfit)
}

func TestOrderProfit(t *testing.T) {
	paid := models.Order{PaymentStatus: models.PaymentPaid, Total: 500, ComponentCost: 120, HandlerFee: 80}
	assert.Equal(t, 300.0, OrderProfit(paid))

	unpaid := models.Order{PaymentStatus: models.PaymentUnpaid, Total: 9999, ComponentCost: 1, HandlerFee: 1}
	assert.Equal(t, 0.0, OrderProfit(unpaid))
}

// Row profit and the aggregate are computed independently but must agree for
// orders the aggregate counts, when every fee has been sent.
func TestRowProfitConsistentWithAggregate(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusCompleted, PaymentStatus: models.PaymentPaid, Total: 500, ComponentCost: 100, HandlerFee: 100, HandlerFeeStatus: models.HandlerFeeSent},
		{Status: models.StatusCompleted, PaymentStatus: models.PaymentPaid, Total: 200, ComponentCost: 50, HandlerFee: 25, HandlerFeeStatus: models.HandlerFeeSent},
	}

	var rowSum float64
	for _, o := range orders {
		rowSum += OrderProfit(o)
	}

	s := Summarize(orders, nil)
	assert.Equal(t, rowSum, s.NetProfit)
}
