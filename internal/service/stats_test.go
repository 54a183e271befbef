package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rmendes/etsypulse/internal/domain/models"
)

func ordersOf(amounts ...string) []models.Order {
	out := make([]models.Order, 0, len(amounts))
	for i, a := range amounts {
		out = append(out, models.Order{ID: int64(i + 1), Amount: decimal.RequireFromString(a)})
	}
	return out
}

func TestComputeStats_TableDriven(t *testing.T) {
	cases := []struct {
		name             string
		orders           []models.Order
		mode             models.Mode
		wantRevenue      string
		wantCount        int
		wantMonthlyRev   string
		wantMonthlyCount int
	}{
		{
			name:             "mock fixture figures",
			orders:           ordersOf("45.99", "23.50", "78.00"),
			mode:             models.ModeMock,
			wantRevenue:      "147.49",
			wantCount:        3,
			wantMonthlyRev:   "2890.45",
			wantMonthlyCount: 67,
		},
		{
			name:             "mock constants ignore today's figures",
			orders:           ordersOf("1000.00"),
			mode:             models.ModeMock,
			wantRevenue:      "1000.00",
			wantCount:        1,
			wantMonthlyRev:   "2890.45",
			wantMonthlyCount: 67,
		},
		{
			name:             "live extrapolates by 15",
			orders:           ordersOf("10.00", "2.50"),
			mode:             models.ModeLive,
			wantRevenue:      "12.50",
			wantCount:        2,
			wantMonthlyRev:   "187.50",
			wantMonthlyCount: 30,
		},
		{
			name:             "live with no orders",
			orders:           nil,
			mode:             models.ModeLive,
			wantRevenue:      "0",
			wantCount:        0,
			wantMonthlyRev:   "0",
			wantMonthlyCount: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stats := ComputeStats(tc.orders, tc.mode)
			if !stats.TodayRevenue.Equal(decimal.RequireFromString(tc.wantRevenue)) {
				t.Fatalf("todayRevenue=%s, want %s", stats.TodayRevenue, tc.wantRevenue)
			}
			if stats.TodaySalesCount != tc.wantCount {
				t.Fatalf("todaySalesCount=%d, want %d", stats.TodaySalesCount, tc.wantCount)
			}
			if !stats.MonthlyRevenue.Equal(decimal.RequireFromString(tc.wantMonthlyRev)) {
				t.Fatalf("monthlyRevenue=%s, want %s", stats.MonthlyRevenue, tc.wantMonthlyRev)
			}
			if stats.MonthlySalesCount != tc.wantMonthlyCount {
				t.Fatalf("monthlySalesCount=%d, want %d", stats.MonthlySalesCount, tc.wantMonthlyCount)
			}
		})
	}
}
