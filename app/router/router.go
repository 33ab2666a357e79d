package router

import (
	"fieldtrack/app/handler"
	"fieldtrack/app/middleware"

	"github.com/gin-gonic/gin"
)

// Router Router
type Router struct {
	eventHandler     *handler.EventHandler
	presenceHandler  *handler.PresenceHandler
	durationHandler  *handler.DurationHandler
	directoryHandler *handler.DirectoryHandler
}

// NewRouter creates a new Router
func NewRouter(eventHandler *handler.EventHandler, presenceHandler *handler.PresenceHandler, durationHandler *handler.DurationHandler, directoryHandler *handler.DirectoryHandler) *Router {
	return &Router{
		eventHandler:     eventHandler,
		presenceHandler:  presenceHandler,
		durationHandler:  durationHandler,
		directoryHandler: directoryHandler,
	}
}

// Setup sets up routes
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger())

	v1 := engine.Group("/v1")
	{
		// Registries
		v1.POST("/jobs", middleware.AuthMiddleware(), r.directoryHandler.CreateJob)
		v1.GET("/jobs", r.directoryHandler.ListJobs)
		v1.GET("/jobs/:job_id", r.directoryHandler.GetJob)
		v1.POST("/workers", middleware.AuthMiddleware(), r.directoryHandler.CreateWorker)
		v1.GET("/workers", r.directoryHandler.ListWorkers)

		// Event log (append-only; reads are audit views)
		v1.POST("/jobs/:job_id/workers/:worker_id/events", middleware.AuthMiddleware(), r.eventHandler.Record)
		v1.GET("/jobs/:job_id/workers/:worker_id/events", r.eventHandler.ListEvents)
		v1.GET("/jobs/:job_id/workers/:worker_id/sessions", r.eventHandler.ListSessions)

		// Derived views
		v1.GET("/jobs/:job_id/presence", r.presenceHandler.GetJobPresence)
		v1.GET("/jobs/:job_id/presence/watch", r.presenceHandler.Watch)
		v1.GET("/jobs/:job_id/durations", r.durationHandler.GetDurations)
	}

	// Health check
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
