package handlers

import (
	"net/http"

	"astroeph-api/internal/logging"
	"astroeph-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressionsHandler handles secondary progressions requests.
type ProgressionsHandler struct {
	progressionsService *service.ProgressionsService
	logger              *logging.Logger
}

// NewProgressionsHandler creates a new progressions handler.
func NewProgressionsHandler(progressionsService *service.ProgressionsService, logger *logging.Logger) *ProgressionsHandler {
	return &ProgressionsHandler{progressionsService: progressionsService, logger: logger}
}

// HandleProgressions handles POST /api/v1/progressions
func (ph *ProgressionsHandler) HandleProgressions(c *gin.Context) {
	var req service.ProgressionsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		ph.logger.Error().Err(err).Str("endpoint", "progressions").Msg("invalid request body")
		respondError(c, "invalid request body", err)
		return
	}

	report, err := ph.progressionsService.CalculateProgressions(&req)
	if err != nil {
		ph.logger.Error().Err(err).Str("endpoint", "progressions").Msg("failed to calculate progressions")
		respondError(c, "failed to calculate progressions", err)
		return
	}

	c.JSON(http.StatusOK, report)
}
