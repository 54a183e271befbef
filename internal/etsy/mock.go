package etsy

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmendes/etsypulse/internal/domain/models"
)

// MockSource serves a fixed demo fixture so the dashboard and the display
// client stay usable without Etsy credentials: one shop and three orders
// placed 2, 4 and 6 hours ago.
//
// The fixture is rebuilt on every call, so the order ages are always relative
// to the request, not to process start.
type MockSource struct {
	now func() time.Time // injected in tests
}

// NewMockSource constructs the fixture-backed source.
func NewMockSource() *MockSource {
	return &MockSource{now: time.Now}
}

// Mode implements DataSource.
func (s *MockSource) Mode() models.Mode { return models.ModeMock }

// FetchShopAndOrders implements DataSource. It never fails and performs no I/O.
func (s *MockSource) FetchShopAndOrders(_ context.Context) (models.ShopInfo, []models.Order, error) {
	now := s.now()

	shop := models.ShopInfo{
		Name:           "Your Amazing Etsy Shop",
		TotalSales:     1247,
		TotalFavorites: 892,
	}

	orders := []models.Order{
		{
			ID:     1,
			Amount: decimal.RequireFromString("45.99"),
			Buyer:  "Customer #1234",
			Time:   now.Add(-2 * time.Hour),
			Items:  []string{"Custom Coffee Mug", "Sticker Pack"},
		},
		{
			ID:     2,
			Amount: decimal.RequireFromString("23.50"),
			Buyer:  "Customer #5678",
			Time:   now.Add(-4 * time.Hour),
			Items:  []string{"Vintage T-Shirt"},
		},
		{
			ID:     3,
			Amount: decimal.RequireFromString("78.00"),
			Buyer:  "Customer #9101",
			Time:   now.Add(-6 * time.Hour),
			Items:  []string{"Custom Art Print", "Wooden Frame"},
		},
	}

	return shop, orders, nil
}
