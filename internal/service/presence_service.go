package service

import (
	"context"
	"fmt"
	"time"

	"fieldtrack/internal/model"
	"fieldtrack/internal/timeline"
	"fieldtrack/pkg/interfaces"
	"fieldtrack/pkg/logger"
)

// PresenceService answers "who is on this job site right now" from the event
// log. A Redis snapshot cache fronts the live view; the cache is never
// authoritative and every miss or cache outage falls through to
// reconstruction.
type PresenceService struct {
	events   interfaces.EventStore
	jobs     interfaces.JobDirectory
	cache    interfaces.PresenceCache // optional
	cacheTTL time.Duration
}

// NewPresenceService creates a new presence service
func NewPresenceService(
	events interfaces.EventStore,
	jobs interfaces.JobDirectory,
	cache interfaces.PresenceCache,
	cacheTTL time.Duration,
) *PresenceService {
	return &PresenceService{
		events:   events,
		jobs:     jobs,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GetJobPresence returns the presence snapshot for a job. A zero asOf means
// "now", the only form served from cache; historical and audit
// (includeInactive) queries always reconstruct.
func (s *PresenceService) GetJobPresence(ctx context.Context, jobID string, asOf time.Time, includeInactive bool) (*model.PresenceSnapshot, error) {
	exists, err := s.jobs.Exists(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to check job: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownJob, jobID)
	}

	live := asOf.IsZero()
	cacheable := live && !includeInactive && s.cache != nil

	if cacheable {
		snapshot, err := s.cache.Get(ctx, jobID)
		if err != nil {
			logger.WarnCtx(ctx, "presence cache read failed for job %s: %v", jobID, err)
		} else if snapshot != nil {
			return snapshot, nil
		}
	}

	if live {
		asOf = time.Now()
	}

	snapshot, err := s.resolve(ctx, jobID, asOf, includeInactive)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, snapshot, s.cacheTTL); err != nil {
			logger.WarnCtx(ctx, "presence cache write failed for job %s: %v", jobID, err)
		}
	}
	return snapshot, nil
}

// RefreshJob rebuilds the cached live snapshot for one job from the log
func (s *PresenceService) RefreshJob(ctx context.Context, jobID string) error {
	snapshot, err := s.resolve(ctx, jobID, time.Now(), false)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, snapshot, s.cacheTTL)
}

// RefreshAll rebuilds the cached live snapshot for every registered job
func (s *PresenceService) RefreshAll(ctx context.Context) error {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}
	for _, job := range jobs {
		if err := s.RefreshJob(ctx, job.ID); err != nil {
			logger.ErrorCtx(ctx, "failed to refresh presence for job %s: %v", job.ID, err)
		}
	}
	return nil
}

// StaleSession an open session older than the audit threshold, usually a
// worker whose device never delivered the stop event
type StaleSession struct {
	JobID    string    `json:"job_id"`
	WorkerID string    `json:"worker_id"`
	OpenedAt time.Time `json:"opened_at"`
}

// FindStaleOpenSessions scans all jobs for open sessions older than threshold
func (s *PresenceService) FindStaleOpenSessions(ctx context.Context, threshold time.Duration, now time.Time) ([]StaleSession, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	var stale []StaleSession
	for _, job := range jobs {
		events, err := s.events.ListByJob(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		for workerID, group := range timeline.GroupByWorker(events) {
			for _, sess := range timeline.Reconstruct(group) {
				if sess.Open() && now.Sub(sess.OpenedAt) > threshold {
					stale = append(stale, StaleSession{
						JobID:    job.ID,
						WorkerID: workerID,
						OpenedAt: sess.OpenedAt,
					})
				}
			}
		}
	}
	return stale, nil
}

// resolve reconstructs the snapshot from the log
func (s *PresenceService) resolve(ctx context.Context, jobID string, asOf time.Time, includeInactive bool) (*model.PresenceSnapshot, error) {
	events, err := s.events.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &model.PresenceSnapshot{
		JobID:   jobID,
		AsOf:    asOf,
		Workers: timeline.ResolvePresence(events, asOf, includeInactive),
	}, nil
}
