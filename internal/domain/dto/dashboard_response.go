package dto

import (
	"github.com/rmendes/etsypulse/internal/domain/models"
)

// DashboardResponse is the nested JSON structure returned by GET /api/etsy-data.
//
// Key names match the contract the browser dashboard was built against:
// "shop", "todaysSales" and "stats". Amounts stay numeric; all string
// formatting (currency symbols, relative times) is the display client's
// concern, not this endpoint's.
type DashboardResponse struct {
	Shop        models.ShopInfo `json:"shop"`
	TodaysSales []models.Order  `json:"todaysSales"`
	Stats       models.Stats    `json:"stats"`
}

// NewDashboardResponse projects a Dashboard into the nested API shape.
func NewDashboardResponse(d *models.Dashboard) DashboardResponse {
	return DashboardResponse{
		Shop:        d.Shop,
		TodaysSales: d.Orders,
		Stats:       d.Stats,
	}
}
