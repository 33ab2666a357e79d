package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldtrack/internal/model"
	"fieldtrack/internal/service"
	"fieldtrack/pkg/logger"
)

// EventHandler handles event ingestion and raw log reads
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Record appends one action event for a worker on a job
// @Summary Record event
// @Description Append a start/pause/resume/stop event to the job log
// @Tags events
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param worker_id path string true "Worker ID"
// @Param request body model.RecordEventRequest true "Event"
// @Success 200 {object} model.RecordEventResponse
// @Router /v1/jobs/{job_id}/workers/{worker_id}/events [post]
func (h *EventHandler) Record(c *gin.Context) {
	jobID := c.Param("job_id")
	workerID := c.Param("worker_id")

	var req model.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.ErrorCtx(c.Request.Context(), "invalid request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	event, err := h.eventService.RecordEvent(c.Request.Context(), jobID, workerID, &req)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to record event, job: %s, worker: %s, error: %v", jobID, workerID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.RecordEventResponse{
		EventID:  event.EventID,
		Sequence: event.Sequence,
	})
}

// ListEvents returns the ordered event log for one (job, worker)
// @Summary List worker events
// @Tags events
// @Produce json
// @Param job_id path string true "Job ID"
// @Param worker_id path string true "Worker ID"
// @Success 200 {object} map[string]interface{}
// @Router /v1/jobs/{job_id}/workers/{worker_id}/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	jobID := c.Param("job_id")
	workerID := c.Param("worker_id")

	events, err := h.eventService.ListWorkerEvents(c.Request.Context(), jobID, workerID)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to list events, job: %s, worker: %s, error: %v", jobID, workerID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// ListSessions returns the reconstructed session intervals for one (job, worker)
// @Summary List worker sessions
// @Tags events
// @Produce json
// @Param job_id path string true "Job ID"
// @Param worker_id path string true "Worker ID"
// @Param as_of query string false "Instant to evaluate open sessions at (RFC 3339, default now)"
// @Success 200 {object} map[string]interface{}
// @Router /v1/jobs/{job_id}/workers/{worker_id}/sessions [get]
func (h *EventHandler) ListSessions(c *gin.Context) {
	jobID := c.Param("job_id")
	workerID := c.Param("worker_id")

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}

	sessions, err := h.eventService.ListWorkerSessions(c.Request.Context(), jobID, workerID, asOf)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to list sessions, job: %s, worker: %s, error: %v", jobID, workerID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}
