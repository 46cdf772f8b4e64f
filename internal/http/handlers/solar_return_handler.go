package handlers

import (
	"net/http"

	"astroeph-api/internal/logging"
	"astroeph-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SolarReturnHandler handles solar return requests.
type SolarReturnHandler struct {
	solarReturnService *service.SolarReturnService
	logger             *logging.Logger
}

// NewSolarReturnHandler creates a new solar return handler.
func NewSolarReturnHandler(solarReturnService *service.SolarReturnService, logger *logging.Logger) *SolarReturnHandler {
	return &SolarReturnHandler{solarReturnService: solarReturnService, logger: logger}
}

// HandleSolarReturn handles POST /api/v1/solar-return
func (srh *SolarReturnHandler) HandleSolarReturn(c *gin.Context) {
	var req service.SolarReturnRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		srh.logger.Error().Err(err).Str("endpoint", "solar-return").Msg("invalid request body")
		respondError(c, "invalid request body", err)
		return
	}

	report, err := srh.solarReturnService.CalculateSolarReturn(&req)
	if err != nil {
		srh.logger.Error().Err(err).Str("endpoint", "solar-return").Msg("failed to calculate solar return")
		respondError(c, "failed to calculate solar return", err)
		return
	}

	c.JSON(http.StatusOK, report)
}
