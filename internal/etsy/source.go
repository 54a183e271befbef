package etsy

import (
	"context"

	"github.com/rmendes/etsypulse/config"
	"github.com/rmendes/etsypulse/internal/domain/models"
)

// DataSource supplies the shop profile and today's normalized orders.
//
// Both implementations return the same shape, so everything downstream of the
// source is mode-agnostic except for the monthly-stats policy (see
// service.ComputeStats).
type DataSource interface {
	// FetchShopAndOrders returns the shop profile and the orders created
	// today, already normalized. Any upstream failure aborts the whole
	// operation; partial results are never returned.
	FetchShopAndOrders(ctx context.Context) (models.ShopInfo, []models.Order, error)

	// Mode reports where the data comes from.
	Mode() models.Mode
}

// NewSource selects the data source once at startup: live when both
// credentials are configured, mock otherwise.
func NewSource(cfg config.EtsyConfig) DataSource {
	if cfg.HasCredentials() {
		return NewLiveSource(cfg)
	}
	return NewMockSource()
}
