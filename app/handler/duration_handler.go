package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldtrack/internal/service"
	"fieldtrack/pkg/logger"
)

// DurationHandler handles per-job duration reports
type DurationHandler struct {
	durationService *service.DurationService
}

// NewDurationHandler creates duration handler
func NewDurationHandler(durationService *service.DurationService) *DurationHandler {
	return &DurationHandler{durationService: durationService}
}

// GetDurations returns elapsed active time per worker for a job
// @Summary Get job durations
// @Description Accumulated active seconds per worker, open sessions counted up to as_of
// @Tags durations
// @Produce json
// @Param job_id path string true "Job ID"
// @Param as_of query string false "Instant to evaluate durations at (RFC 3339, default now)"
// @Success 200 {object} model.DurationReport
// @Router /v1/jobs/{job_id}/durations [get]
func (h *DurationHandler) GetDurations(c *gin.Context) {
	jobID := c.Param("job_id")

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	report, err := h.durationService.GetDurations(c.Request.Context(), jobID, asOf)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to get durations, job: %s, error: %v", jobID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
