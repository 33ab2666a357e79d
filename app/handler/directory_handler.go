package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldtrack/internal/model"
	"fieldtrack/internal/service"
	"fieldtrack/pkg/logger"
)

// DirectoryHandler handles the job and worker registries
type DirectoryHandler struct {
	directoryService *service.DirectoryService
}

// NewDirectoryHandler creates directory handler
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// CreateJob registers a job site
func (h *DirectoryHandler) CreateJob(c *gin.Context) {
	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	job, err := h.directoryService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to create job: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// GetJob returns one job
func (h *DirectoryHandler) GetJob(c *gin.Context) {
	job, err := h.directoryService.GetJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListJobs returns all jobs
func (h *DirectoryHandler) ListJobs(c *gin.Context) {
	jobs, err := h.directoryService.ListJobs(c.Request.Context())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to list jobs: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

// CreateWorker registers a field worker
func (h *DirectoryHandler) CreateWorker(c *gin.Context) {
	var req model.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	worker, err := h.directoryService.CreateWorker(c.Request.Context(), &req)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to create worker: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// ListWorkers returns all workers
func (h *DirectoryHandler) ListWorkers(c *gin.Context) {
	workers, err := h.directoryService.ListWorkers(c.Request.Context())
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "failed to list workers: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workers": workers, "count": len(workers)})
}
