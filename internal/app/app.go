package app

import (
	"github.com/gin-gonic/gin"

	"github.com/rmendes/etsypulse/config"
	"github.com/rmendes/etsypulse/internal/api"
	"github.com/rmendes/etsypulse/internal/etsy"
	"github.com/rmendes/etsypulse/internal/logger"
	"github.com/rmendes/etsypulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Selects the data source (live Etsy API vs. mock fixture) from config.
//   - Initializes the service layer (stats aggregation).
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers the health endpoint.
//   - Provides a cleanup function to release upstream connections.
//
// The source is selected exactly once here; no component re-checks the
// credentials afterwards.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Select mock vs. live data source once at startup
	src := etsy.NewSource(cfg.Etsy)
	logger.L().Info().Str("mode", string(src.Mode())).Msg("data source selected")
	if src.Mode() == "mock" {
		logger.L().Warn().Msg("using mock data - set ETSY_API_KEY and ETSY_SHOP_ID for real data")
	}

	// Initialize service layer (business logic)
	svc := service.NewDashboardService(src)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg)

	// Register health endpoint
	healthHandler := api.NewHealthHandler(cfg.Etsy.HasCredentials())
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		if live, ok := src.(*etsy.LiveSource); ok {
			live.Close()
		}
	}

	return router, cleanup, nil
}
