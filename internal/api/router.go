package api

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rmendes/etsypulse/config"
	"github.com/rmendes/etsypulse/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter, CORS).
//   - Adds request timeout handling (15 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the dashboard routes and the static page.
//   - Returns 404 with a JSON body for unknown paths.
//
// Note:
//   - The health endpoint is registered in app.InitializeApp().
func NewRouter(handler *Handler, cfg config.Config) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
		cors.Default(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Dashboard API ────────────────────────────
	router.GET("/api/etsy-data", handler.GetEtsyData)
	router.GET("/trmnl", handler.GetTrmnl)

	// ─── Static dashboard page ────────────────────
	router.StaticFile("/", filepath.Join(cfg.Server.StaticDir, "index.html"))

	// ─── Catch-all ────────────────────────────────
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
