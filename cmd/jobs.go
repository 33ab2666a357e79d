package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"fieldtrack/internal/jobs"
	"fieldtrack/internal/service"
	"fieldtrack/pkg/lock"
	"fieldtrack/pkg/logger"
)

func (app *Application) initJobs() error {
	if app.presenceService == nil {
		logger.WarnCtx(app.ctx, "Service layer not fully initialized yet, skipping background task registration")
		return nil
	}

	manager := jobs.NewManager(app.ctx)

	// Distributed locks keep multiple replicas from rebuilding the same
	// snapshots. Without Redis they downgrade to single-instance mode.
	var redisClient *redis.Client
	if app.redisClient != nil {
		redisClient = app.redisClient.GetClient()
	}

	refreshInterval := time.Duration(app.config.Presence.RefreshInterval) * time.Second
	staleThreshold := time.Duration(app.config.Presence.StaleSessionHours) * time.Hour

	refreshLock := lock.NewRedisLock(redisClient, "presence:refresh-lock")
	auditLock := lock.NewRedisLock(redisClient, "presence:stale-audit-lock")

	manager.Register(newPresenceRefreshJob(refreshInterval, app.presenceService, refreshLock))
	manager.Register(newStaleSessionAuditJob(time.Hour, staleThreshold, app.presenceService, auditLock))

	app.jobsManager = manager
	return nil
}

// presenceRefreshJob rebuilds every job's cached presence snapshot from the
// event log, so the cache can never drift from the source of truth for longer
// than one interval
type presenceRefreshJob struct {
	interval time.Duration
	presence *service.PresenceService
	lock     lock.DistributedLock
}

func newPresenceRefreshJob(interval time.Duration, presence *service.PresenceService, l lock.DistributedLock) *presenceRefreshJob {
	return &presenceRefreshJob{interval: interval, presence: presence, lock: l}
}

func (j *presenceRefreshJob) Name() string            { return "presence-refresh" }
func (j *presenceRefreshJob) Interval() time.Duration { return j.interval }

func (j *presenceRefreshJob) Run(ctx context.Context) error {
	acquired, err := j.lock.TryLock(ctx)
	if err != nil || !acquired {
		return err
	}
	defer j.lock.Unlock(ctx)

	return j.presence.RefreshAll(ctx)
}

// staleSessionAuditJob flags open sessions older than the configured
// threshold: almost always a device that never delivered its stop event
type staleSessionAuditJob struct {
	interval  time.Duration
	threshold time.Duration
	presence  *service.PresenceService
	lock      lock.DistributedLock
}

func newStaleSessionAuditJob(interval, threshold time.Duration, presence *service.PresenceService, l lock.DistributedLock) *staleSessionAuditJob {
	return &staleSessionAuditJob{interval: interval, threshold: threshold, presence: presence, lock: l}
}

func (j *staleSessionAuditJob) Name() string            { return "stale-session-audit" }
func (j *staleSessionAuditJob) Interval() time.Duration { return j.interval }

func (j *staleSessionAuditJob) Run(ctx context.Context) error {
	acquired, err := j.lock.TryLock(ctx)
	if err != nil || !acquired {
		return err
	}
	defer j.lock.Unlock(ctx)

	stale, err := j.presence.FindStaleOpenSessions(ctx, j.threshold, time.Now())
	if err != nil {
		return err
	}
	for _, s := range stale {
		logger.WarnCtx(ctx, "open session exceeds %v: job %s, worker %s, opened at %s",
			j.threshold, s.JobID, s.WorkerID, s.OpenedAt.Format(time.RFC3339))
	}
	return nil
}
