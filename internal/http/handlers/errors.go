package handlers

import (
	"errors"
	"net/http"

	"astroeph-api/internal/corerr"

	"github.com/gin-gonic/gin"
)

// statusForError maps a corerr.Kind to the HTTP status the handler layer
// reports it under; corerr itself carries no HTTP coupling.
func statusForError(err error) int {
	var coreErr *corerr.Error
	if errors.As(err, &coreErr) {
		switch coreErr.Kind {
		case corerr.InvalidInput:
			return http.StatusBadRequest
		case corerr.EphemerisUnavailable:
			return http.StatusServiceUnavailable
		case corerr.ReturnNotFound:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, summary string, err error) {
	c.JSON(statusForError(err), gin.H{
		"error":   summary,
		"details": err.Error(),
	})
}
