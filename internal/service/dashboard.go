package service

import (
	"context"

	"github.com/rmendes/etsypulse/internal/domain/models"
	"github.com/rmendes/etsypulse/internal/etsy"
)

// DashboardService defines the business logic behind both dashboard
// projections: fetch the shop and today's orders, then derive the stats.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
}

type dashboardService struct {
	src etsy.DataSource
}

// NewDashboardService builds the service on top of the selected data source.
func NewDashboardService(src etsy.DataSource) DashboardService {
	return &dashboardService{src: src}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	shop, orders, err := s.src.FetchShopAndOrders(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Shop:   shop,
		Orders: orders,
		Stats:  ComputeStats(orders, s.src.Mode()),
	}, nil
}
