package main

import (
	"fmt"
	"net/http"
	"time"

	"fieldtrack/app/handler"
	"fieldtrack/app/router"
	"fieldtrack/internal/service"
	"fieldtrack/pkg/config"
	"fieldtrack/pkg/interfaces"
	"fieldtrack/pkg/logger"
	mysqlstore "fieldtrack/pkg/store/mysql"
	redisstore "fieldtrack/pkg/store/redis"

	"github.com/gin-gonic/gin"
)

// initConfig initializes configuration
func (app *Application) initConfig() error {
	if err := config.Init(); err != nil {
		return err
	}
	app.config = config.GlobalConfig
	return nil
}

// initLogger initializes logging
func (app *Application) initLogger() error {
	if err := logger.Init(); err != nil {
		return err
	}
	app.registerCleanup(func() {
		logger.Sync()
		logger.InfoCtx(app.ctx, "Logging system has been closed")
	})
	return nil
}

// initMySQL initializes MySQL
func (app *Application) initMySQL() error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		app.config.MySQL.User,
		app.config.MySQL.Password,
		app.config.MySQL.Host,
		app.config.MySQL.Port,
		app.config.MySQL.Database,
	)

	repo, err := mysqlstore.NewRepository(dsn)
	if err != nil {
		return err
	}
	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	app.mysqlRepo = repo
	app.registerCleanup(func() {
		repo.Close()
		logger.InfoCtx(app.ctx, "MySQL connection has been closed")
	})

	return nil
}

// initRedis initializes Redis.
// Redis only carries derived snapshots and job locks; the service degrades to
// uncached reconstruction when it is unreachable.
func (app *Application) initRedis() error {
	client, err := redisstore.NewRedisClient(app.config)
	if err != nil {
		logger.WarnCtx(app.ctx, "Redis unavailable, presence cache disabled: %v", err)
		return nil
	}

	app.redisClient = client
	app.registerCleanup(func() {
		client.Close()
		logger.InfoCtx(app.ctx, "Redis connection has been closed")
	})

	return nil
}

// initServices initializes service layer
func (app *Application) initServices() error {
	var cache interfaces.PresenceCache
	if app.redisClient != nil {
		cache = redisstore.NewPresenceCache(app.redisClient)
	}

	cacheTTL := time.Duration(app.config.Presence.CacheTTL) * time.Second

	app.eventService = service.NewEventService(app.mysqlRepo.Event, app.mysqlRepo.Job, app.mysqlRepo.Worker, cache)
	app.presenceService = service.NewPresenceService(app.mysqlRepo.Event, app.mysqlRepo.Job, cache, cacheTTL)
	app.durationService = service.NewDurationService(app.mysqlRepo.Event, app.mysqlRepo.Job)
	app.directoryService = service.NewDirectoryService(app.mysqlRepo.Job, app.mysqlRepo.Worker)

	return nil
}

// initHandlers initializes handler layer
func (app *Application) initHandlers() error {
	watchInterval := time.Duration(app.config.Presence.WatchInterval) * time.Second

	app.eventHandler = handler.NewEventHandler(app.eventService)
	app.presenceHandler = handler.NewPresenceHandler(app.presenceService, watchInterval)
	app.durationHandler = handler.NewDurationHandler(app.durationService)
	app.directoryHandler = handler.NewDirectoryHandler(app.directoryService)

	return nil
}

// initHTTPServer initializes HTTP server
func (app *Application) initHTTPServer() error {
	gin.SetMode(app.config.Server.Mode)
	app.ginEngine = gin.New()

	r := router.NewRouter(app.eventHandler, app.presenceHandler, app.durationHandler, app.directoryHandler)
	r.Setup(app.ginEngine)

	app.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.ginEngine,
	}

	return nil
}
