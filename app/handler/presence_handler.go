package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"fieldtrack/internal/model"
	"fieldtrack/internal/service"
	"fieldtrack/pkg/logger"
)

// PresenceHandler handles presence queries and the live watch stream
type PresenceHandler struct {
	presenceService *service.PresenceService
	watchInterval   time.Duration
}

// NewPresenceHandler creates presence handler
func NewPresenceHandler(presenceService *service.PresenceService, watchInterval time.Duration) *PresenceHandler {
	return &PresenceHandler{
		presenceService: presenceService,
		watchInterval:   watchInterval,
	}
}

// GetJobPresence returns the workers on-site for a job
// @Summary Get job presence
// @Description Workers with an open session at as_of, with last known location
// @Tags presence
// @Produce json
// @Param job_id path string true "Job ID"
// @Param as_of query string false "Instant to evaluate presence at (RFC 3339, default now)"
// @Param include_inactive query bool false "Also return workers without an open session (audit view)"
// @Success 200 {object} model.PresenceSnapshot
// @Router /v1/jobs/{job_id}/presence [get]
func (h *PresenceHandler) GetJobPresence(c *gin.Context) {
	jobID := c.Param("job_id")

	asOf, ok := parseAsOf(c)
	if !ok {
		return
	}
	includeInactive := c.Query("include_inactive") == "true"

	snapshot, err := h.presenceService.GetJobPresence(c.Request.Context(), jobID, asOf, includeInactive)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to get presence, job: %s, error: %v", jobID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins, production should use stricter checks
	},
}

// Watch streams the live presence snapshot for a job over a websocket until
// the client disconnects
// @Summary Watch job presence
// @Tags presence
// @Param job_id path string true "Job ID"
// @Router /v1/jobs/{job_id}/presence/watch [get]
func (h *PresenceHandler) Watch(c *gin.Context) {
	jobID := c.Param("job_id")

	// Reject unknown jobs before upgrading the connection
	if _, err := h.presenceService.GetJobPresence(c.Request.Context(), jobID, time.Time{}, false); err != nil {
		if errors.Is(err, model.ErrUnknownJob) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to upgrade to websocket: %v", err)
		return
	}
	defer ws.Close()

	ticker := time.NewTicker(h.watchInterval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		snapshot, err := h.presenceService.GetJobPresence(ctx, jobID, time.Time{}, false)
		if err != nil {
			logger.ErrorCtx(ctx, "presence watch query failed, job: %s, error: %v", jobID, err)
			return
		}
		if err := ws.WriteJSON(snapshot); err != nil {
			// Client went away
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
