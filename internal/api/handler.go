package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmendes/etsypulse/internal/domain/dto"
	"github.com/rmendes/etsypulse/internal/logger"
	"github.com/rmendes/etsypulse/internal/service"
)

// Handler provides the HTTP handlers for both dashboard projections.
//
// Responsibilities:
//   - Invoke the dashboard service
//   - Project the result into the endpoint's response DTO
//   - Return structured JSON with appropriate HTTP status codes
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// GetEtsyData handles GET /api/etsy-data requests.
//
// Responses:
//   - 200 OK: nested DashboardResponse (shop, todaysSales, stats).
//   - 500 Internal Server Error: ErrorResponse when the upstream fails.
//
// GetEtsyData godoc
// @Summary      Get dashboard data
// @Description  Returns the shop profile, today's sales and derived stats
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/etsy-data [get]
func (h *Handler) GetEtsyData(c *gin.Context) {
	d, err := h.svc.GetDashboard(c.Request.Context())
	if err != nil {
		logger.L().Error().Err(err).Msg("dashboard fetch failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to fetch Etsy data", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(d))
}

// GetTrmnl handles GET /trmnl requests for the e-ink display client.
//
// On failure the response keeps the full display shape with zeroed figures
// instead of a generic error body: the device renders whatever fields it
// gets, so the error must look like a normal payload.
//
// GetTrmnl godoc
// @Summary      Get display data
// @Description  Returns the flattened, pre-formatted payload for the trmnl display
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.TrmnlResponse  "Success"
// @Failure      500  {object}  dto.TrmnlResponse  "Display-shaped error payload"
// @Router       /trmnl [get]
func (h *Handler) GetTrmnl(c *gin.Context) {
	now := time.Now()

	d, err := h.svc.GetDashboard(c.Request.Context())
	if err != nil {
		logger.L().Error().Err(err).Msg("trmnl fetch failed")
		c.JSON(http.StatusInternalServerError, dto.NewTrmnlErrorResponse(now))
		return
	}

	c.JSON(http.StatusOK, dto.NewTrmnlResponse(d, now))
}
