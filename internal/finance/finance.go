package finance

import (
	"campusbuild/internal/models"
)

// Summary is the read-side financial rollup. It is recomputed from the
// current order and employee snapshots on every request and never persisted.
type Summary struct {
	CompletedOrders     int     `json:"completed_orders"`
	PaidCompletedOrders int     `json:"paid_completed_orders"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalComponentCost  float64 `json:"total_component_cost"`
	TotalHandlerFees    float64 `json:"total_handler_fees"`
	TotalSalaryCost     float64 `json:"total_salary_cost"`
	NetProfit           float64 `json:"net_profit"`
}

// Summarize computes the rollup. Revenue, component cost and handler fees
// count only orders that are both Completed and Paid; handler fees
// additionally require the fee to have been sent. Salary cost covers every
// employee with a tracked salary.
func Summarize(orders []models.Order, employees []models.Employee) Summary {
	var s Summary

	for _, o := range orders {
		if o.Status != models.StatusCompleted {
			continue
		}
		s.CompletedOrders++
		if o.PaymentStatus != models.PaymentPaid {
			continue
		}
		s.PaidCompletedOrders++
		s.TotalRevenue += o.Total
		s.TotalComponentCost += o.ComponentCost
		if o.HandlerFeeStatus == models.HandlerFeeSent {
			s.TotalHandlerFees += o.HandlerFee
		}
	}

	for _, e := range employees {
		if e.Salary != nil {
			s.TotalSalaryCost += *e.Salary
		}
	}

	s.NetProfit = s.TotalRevenue - s.TotalComponentCost - s.TotalSalaryCost - s.TotalHandlerFees
	return s
}

// OrderProfit is the per-row display profit: total minus component cost and
// handler fee once the order is paid, zero until then. Rows use the same
// formula as the aggregate but are computed independently.
func OrderProfit(o models.Order) float64 {
	if o.PaymentStatus != models.PaymentPaid {
		return 0
	}
	return o.Total - o.ComponentCost - o.HandlerFee
}
