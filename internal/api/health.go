package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides the service health endpoint.
//
// Besides liveness it reports whether Etsy credentials are configured, so a
// deployment can tell at a glance if it is serving mock or live data.
type HealthHandler struct {
	hasAPIKeys bool
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(hasAPIKeys bool) *HealthHandler {
	return &HealthHandler{hasAPIKeys: hasAPIKeys}
}

// Register mounts the health endpoint into the provided Gin router.
//
// Routes:
//   - GET /health: returns {status, timestamp, hasApiKeys}.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Health godoc
	// @Summary      Health check
	// @Description  Reports liveness and whether Etsy credentials are configured
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]any
	// @Router       /health [get]
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "OK",
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"hasApiKeys": h.hasAPIKeys,
		})
	})
}
