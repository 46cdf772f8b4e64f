package handlers

import (
	"net/http"

	"astroeph-api/internal/logging"
	"astroeph-api/internal/service"

	"github.com/gin-gonic/gin"
)

// NatalHandler handles natal chart requests.
type NatalHandler struct {
	natalService *service.NatalService
	logger       *logging.Logger
}

// NewNatalHandler creates a new natal chart handler.
func NewNatalHandler(natalService *service.NatalService, logger *logging.Logger) *NatalHandler {
	return &NatalHandler{natalService: natalService, logger: logger}
}

// HandleNatalChart handles POST /api/v1/natal-chart
func (nh *NatalHandler) HandleNatalChart(c *gin.Context) {
	var req service.NatalChartRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		nh.logger.Error().Err(err).Str("endpoint", "natal-chart").Msg("invalid request body")
		respondError(c, "invalid request body", err)
		return
	}

	if err := nh.natalService.ValidateNatalChartRequest(&req); err != nil {
		nh.logger.Error().Err(err).Str("endpoint", "natal-chart").Msg("invalid request parameters")
		respondError(c, "invalid request parameters", err)
		return
	}

	chart, err := nh.natalService.CalculateNatalChart(&req)
	if err != nil {
		nh.logger.Error().Err(err).Str("endpoint", "natal-chart").Msg("failed to calculate natal chart")
		respondError(c, "failed to calculate natal chart", err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// GetSupportedHouseSystems handles GET /api/v1/house-systems
func (nh *NatalHandler) GetSupportedHouseSystems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"house_systems": nh.natalService.GetSupportedHouseSystems(),
		"default":       "Placidus",
	})
}
