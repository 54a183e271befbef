package models

import "github.com/shopspring/decimal"

// Mode identifies where the dashboard data came from.
type Mode string

const (
	// ModeMock means the fixed in-memory fixture is being served.
	ModeMock Mode = "mock"
	// ModeLive means data is fetched from the Etsy Open API.
	ModeLive Mode = "live"
)

// Stats holds the derived figures shown on the dashboard.
//
// Monthly figures are mode-dependent: canned demo constants in mock mode and
// a rough ×15 extrapolation of today's figures in live mode. They are derived
// per request and never persisted.
type Stats struct {
	TodayRevenue      decimal.Decimal `json:"todayRevenue" example:"147.49"`
	TodaySalesCount   int             `json:"todaySalesCount" example:"3"`
	MonthlyRevenue    decimal.Decimal `json:"monthlyRevenue" example:"2890.45"`
	MonthlySalesCount int             `json:"monthlySalesCount" example:"67"`
}

// Dashboard is the per-request composite handed from the service layer to the
// view formatters. Constructed fresh for every request and discarded after
// the response is written.
type Dashboard struct {
	Shop   ShopInfo
	Orders []Order
	Stats  Stats
}
