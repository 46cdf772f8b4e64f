package handlers

import (
	"net/http"

	"astroeph-api/internal/logging"
	"astroeph-api/internal/service"

	"github.com/gin-gonic/gin"
)

// TransitsHandler handles transit-chart requests.
type TransitsHandler struct {
	transitsService *service.TransitsService
	logger          *logging.Logger
}

// NewTransitsHandler creates a new transits handler.
func NewTransitsHandler(transitsService *service.TransitsService, logger *logging.Logger) *TransitsHandler {
	return &TransitsHandler{transitsService: transitsService, logger: logger}
}

// HandleTransits handles POST /api/v1/transits
func (th *TransitsHandler) HandleTransits(c *gin.Context) {
	var req service.TransitsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		th.logger.Error().Err(err).Str("endpoint", "transits").Msg("invalid request body")
		respondError(c, "invalid request body", err)
		return
	}

	report, err := th.transitsService.CalculateTransits(&req)
	if err != nil {
		th.logger.Error().Err(err).Str("endpoint", "transits").Msg("failed to calculate transits")
		respondError(c, "failed to calculate transits", err)
		return
	}

	c.JSON(http.StatusOK, report)
}
