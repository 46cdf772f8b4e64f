package handlers

import (
	"net/http"

	"astroeph-api/internal/logging"
	"astroeph-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SynastryHandler handles synastry requests.
type SynastryHandler struct {
	synastryService *service.SynastryService
	logger          *logging.Logger
}

// NewSynastryHandler creates a new synastry handler.
func NewSynastryHandler(synastryService *service.SynastryService, logger *logging.Logger) *SynastryHandler {
	return &SynastryHandler{synastryService: synastryService, logger: logger}
}

// HandleSynastry handles POST /api/v1/synastry
func (sh *SynastryHandler) HandleSynastry(c *gin.Context) {
	var req service.SynastryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		sh.logger.Error().Err(err).Str("endpoint", "synastry").Msg("invalid request body")
		respondError(c, "invalid request body", err)
		return
	}

	report, err := sh.synastryService.CalculateSynastry(&req)
	if err != nil {
		sh.logger.Error().Err(err).Str("endpoint", "synastry").Msg("failed to calculate synastry")
		respondError(c, "failed to calculate synastry", err)
		return
	}

	c.JSON(http.StatusOK, report)
}
