package handlers

import (
	"net/http"

	"astroeph-api/internal/logging"
	"astroeph-api/internal/service"

	"github.com/gin-gonic/gin"
)

// LunarReturnHandler handles lunar return requests.
type LunarReturnHandler struct {
	lunarReturnService *service.LunarReturnService
	logger             *logging.Logger
}

// NewLunarReturnHandler creates a new lunar return handler.
func NewLunarReturnHandler(lunarReturnService *service.LunarReturnService, logger *logging.Logger) *LunarReturnHandler {
	return &LunarReturnHandler{lunarReturnService: lunarReturnService, logger: logger}
}

// HandleLunarReturn handles POST /api/v1/lunar-return
func (lrh *LunarReturnHandler) HandleLunarReturn(c *gin.Context) {
	var req service.LunarReturnRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		lrh.logger.Error().Err(err).Str("endpoint", "lunar-return").Msg("invalid request body")
		respondError(c, "invalid request body", err)
		return
	}

	report, err := lrh.lunarReturnService.CalculateLunarReturn(&req)
	if err != nil {
		lrh.logger.Error().Err(err).Str("endpoint", "lunar-return").Msg("failed to calculate lunar return")
		respondError(c, "failed to calculate lunar return", err)
		return
	}

	c.JSON(http.StatusOK, report)
}
