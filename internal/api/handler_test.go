package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rmendes/etsypulse/internal/domain/dto"
	"github.com/rmendes/etsypulse/internal/domain/models"
	"github.com/rmendes/etsypulse/internal/service"
)

type mockDashboardService struct {
	resp *models.Dashboard
	err  error
}

func (m *mockDashboardService) GetDashboard(_ context.Context) (*models.Dashboard, error) {
	return m.resp, m.err
}

var _ service.DashboardService = (*mockDashboardService)(nil)

func testDashboard() *models.Dashboard {
	return &models.Dashboard{
		Shop: models.ShopInfo{Name: "Your Amazing Etsy Shop", TotalSales: 1247, TotalFavorites: 892},
		Orders: []models.Order{
			{ID: 1, Amount: decimal.RequireFromString("45.99"), Buyer: "Customer #1234", Time: time.Now().Add(-2 * time.Hour), Items: []string{"Custom Coffee Mug", "Sticker Pack"}},
		},
		Stats: models.Stats{
			TodayRevenue:      decimal.RequireFromString("45.99"),
			TodaySalesCount:   1,
			MonthlyRevenue:    decimal.RequireFromString("2890.45"),
			MonthlySalesCount: 67,
		},
	}
}

func setupRouterWithMock(s service.DashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	r.GET("/api/etsy-data", h.GetEtsyData)
	r.GET("/trmnl", h.GetTrmnl)
	return r
}

func TestGetEtsyData_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockDashboardService
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "success",
			svc:    &mockDashboardService{resp: testDashboard()},
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.DashboardResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Shop.Name != "Your Amazing Etsy Shop" || len(out.TodaysSales) != 1 {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.Stats.TodaySalesCount != 1 || !out.Stats.TodayRevenue.Equal(decimal.RequireFromString("45.99")) {
					t.Fatalf("unexpected stats: %+v", out.Stats)
				}
				// Amounts must be plain JSON numbers, not quoted strings
				if !strings.Contains(string(body), `"todayRevenue":45.99`) {
					t.Fatalf("revenue not numeric in %s", body)
				}
			},
		},
		{
			name:   "upstream failure",
			svc:    &mockDashboardService{err: errors.New("upstream API error: shop returned status 503")},
			status: http.StatusInternalServerError,
			assert: func(t *testing.T, body []byte) {
				var out dto.ErrorResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Error != "Failed to fetch Etsy data" || out.Message == "" || out.Timestamp.IsZero() {
					t.Fatalf("unexpected error body: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/etsy-data", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetTrmnl_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockDashboardService
		status int
		assert func(t *testing.T, out dto.TrmnlResponse)
	}{
		{
			name:   "success",
			svc:    &mockDashboardService{resp: testDashboard()},
			status: http.StatusOK,
			assert: func(t *testing.T, out dto.TrmnlResponse) {
				if out.ShopName != "Your Amazing Etsy Shop" || out.TodayRevenue != "$45.99" {
					t.Fatalf("unexpected body: %+v", out)
				}
				if !out.HasSale1 || out.HasSale2 {
					t.Fatalf("slot flags wrong: %+v", out)
				}
				if out.Alert == nil || *out.Alert != "🔔 1 NEW SALE TODAY!" {
					t.Fatalf("alert wrong: %v", out.Alert)
				}
			},
		},
		{
			name:   "failure keeps display shape",
			svc:    &mockDashboardService{err: errors.New("boom")},
			status: http.StatusInternalServerError,
			assert: func(t *testing.T, out dto.TrmnlResponse) {
				if out.Title == "" || out.StatusMessage != "⚠️ Unable to reach Etsy" {
					t.Fatalf("unexpected error body: %+v", out)
				}
				if out.TodaySales != "0" || out.HasSales || out.HasSale1 {
					t.Fatalf("stats not zeroed: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/trmnl", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var out dto.TrmnlResponse
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if tc.assert != nil {
				tc.assert(t, out)
			}
		})
	}
}
