package service

import (
	"github.com/shopspring/decimal"

	"github.com/rmendes/etsypulse/internal/domain/models"
)

// Monthly figures are mode-dependent on purpose. Mock mode serves canned demo
// values; live mode multiplies today's figures by 15, a rough placeholder
// rather than a real monthly query. The two policies stay separate branches.
var (
	mockMonthlyRevenue = decimal.RequireFromString("2890.45")
	liveMonthlyFactor  = decimal.NewFromInt(15)
)

const mockMonthlySalesCount = 67

// ComputeStats derives the dashboard figures from the normalized order set.
// Orders are already day-filtered by the source (the mock fixture counts as
// "today" in full).
func ComputeStats(orders []models.Order, mode models.Mode) models.Stats {
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Amount)
	}

	stats := models.Stats{
		TodayRevenue:    revenue,
		TodaySalesCount: len(orders),
	}

	if mode == models.ModeMock {
		stats.MonthlyRevenue = mockMonthlyRevenue
		stats.MonthlySalesCount = mockMonthlySalesCount
	} else {
		stats.MonthlyRevenue = revenue.Mul(liveMonthlyFactor)
		stats.MonthlySalesCount = len(orders) * 15
	}

	return stats
}
