package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fieldtrack/internal/model"
)

// respondError maps service errors onto HTTP statuses. Validation errors are
// the caller's fault (400), unknown references are 404, anything else is an
// infrastructure failure and reported retryable (503) so clients can tell
// "try again" from "this job doesn't exist".
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidAction), errors.Is(err, model.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrUnknownJob), errors.Is(err, model.ErrUnknownWorker):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable, retry later", "retryable": true})
	}
}

// parseAsOf reads the optional as_of query parameter (RFC 3339).
// A zero return means "now".
func parseAsOf(c *gin.Context) (time.Time, bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "as_of must be RFC 3339"})
		return time.Time{}, false
	}
	return t, true
}
