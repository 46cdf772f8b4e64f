package handlers

import (
	"net/http"

	"astroeph-api/internal/logging"
	"astroeph-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CompositeHandler handles composite chart requests.
type CompositeHandler struct {
	compositeService *service.CompositeService
	logger           *logging.Logger
}

// NewCompositeHandler creates a new composite handler.
func NewCompositeHandler(compositeService *service.CompositeService, logger *logging.Logger) *CompositeHandler {
	return &CompositeHandler{compositeService: compositeService, logger: logger}
}

// HandleCompositeChart handles POST /api/v1/composite-chart
func (ch *CompositeHandler) HandleCompositeChart(c *gin.Context) {
	var req service.CompositeChartRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		ch.logger.Error().Err(err).Str("endpoint", "composite-chart").Msg("invalid request body")
		respondError(c, "invalid request body", err)
		return
	}

	response, err := ch.compositeService.CalculateCompositeChart(&req)
	if err != nil {
		ch.logger.Error().Err(err).Str("endpoint", "composite-chart").Msg("failed to calculate composite chart")
		respondError(c, "failed to calculate composite chart", err)
		return
	}

	c.JSON(http.StatusOK, response)
}
