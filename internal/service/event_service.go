package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fieldtrack/internal/model"
	"fieldtrack/internal/timeline"
	"fieldtrack/pkg/interfaces"
	"fieldtrack/pkg/logger"
)

// EventService handles event ingestion and raw log reads.
// Validation happens here, once, before anything is written; after that the
// log accepts whatever was recorded. Illegal orderings (stop before start,
// duplicate starts) are not errors: field devices go offline and replay, and
// the reconstruction absorbs them.
type EventService struct {
	events  interfaces.EventStore
	jobs    interfaces.JobDirectory
	workers interfaces.WorkerDirectory
	cache   interfaces.PresenceCache // optional
}

// NewEventService creates a new event service
func NewEventService(
	events interfaces.EventStore,
	jobs interfaces.JobDirectory,
	workers interfaces.WorkerDirectory,
	cache interfaces.PresenceCache,
) *EventService {
	return &EventService{
		events:  events,
		jobs:    jobs,
		workers: workers,
		cache:   cache,
	}
}

// RecordEvent validates and appends one event, returning it with the
// store-assigned ID and sequence number
func (s *EventService) RecordEvent(ctx context.Context, jobID, workerID string, req *model.RecordEventRequest) (*model.Event, error) {
	action := model.EventAction(strings.ToUpper(strings.TrimSpace(req.Action)))
	if !action.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidAction, req.Action)
	}

	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, jobID, workerID); err != nil {
		return nil, err
	}

	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	event := &model.Event{
		JobID:      jobID,
		WorkerID:   workerID,
		Action:     action,
		OccurredAt: occurredAt,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Note:       req.Note,
	}

	if err := s.events.Append(ctx, event); err != nil {
		return nil, err
	}

	// Cached presence for this job is stale now. Best effort: a failed
	// invalidation ages out with the TTL.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, jobID); err != nil {
			logger.WarnCtx(ctx, "failed to invalidate presence cache for job %s: %v", jobID, err)
		}
	}

	return event, nil
}

// ListWorkerEvents returns the raw ordered event log for one (job, worker)
func (s *EventService) ListWorkerEvents(ctx context.Context, jobID, workerID string) ([]model.Event, error) {
	if err := s.checkReferences(ctx, jobID, workerID); err != nil {
		return nil, err
	}
	return s.events.ListByJobWorker(ctx, jobID, workerID)
}

// ListWorkerSessions reconstructs the session intervals for one (job, worker)
// as of the given instant
func (s *EventService) ListWorkerSessions(ctx context.Context, jobID, workerID string, asOf time.Time) ([]model.SessionResponse, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	events, err := s.ListWorkerEvents(ctx, jobID, workerID)
	if err != nil {
		return nil, err
	}

	sessions := timeline.Reconstruct(events)
	result := make([]model.SessionResponse, len(sessions))
	for i, sess := range sessions {
		result[i] = model.SessionResponse{
			OpenedAt:        sess.OpenedAt,
			ClosedAt:        sess.ClosedAt,
			Open:            sess.Open(),
			DurationSeconds: int64(sess.DurationAsOf(asOf).Seconds()),
		}
	}
	return result, nil
}

// checkReferences verifies that the job and worker are registered
func (s *EventService) checkReferences(ctx context.Context, jobID, workerID string) error {
	jobExists, err := s.jobs.Exists(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to check job: %w", err)
	}
	if !jobExists {
		return fmt.Errorf("%w: %s", model.ErrUnknownJob, jobID)
	}

	workerExists, err := s.workers.Exists(ctx, workerID)
	if err != nil {
		return fmt.Errorf("failed to check worker: %w", err)
	}
	if !workerExists {
		return fmt.Errorf("%w: %s", model.ErrUnknownWorker, workerID)
	}
	return nil
}

// validateCoordinates rejects half-present or out-of-range coordinates
func validateCoordinates(lat, lon *float64) error {
	if lat == nil && lon == nil {
		return nil
	}
	if lat == nil || lon == nil {
		return fmt.Errorf("%w: latitude and longitude must be provided together", model.ErrInvalidCoordinates)
	}
	if *lat < -90 || *lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", model.ErrInvalidCoordinates, *lat)
	}
	if *lon < -180 || *lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", model.ErrInvalidCoordinates, *lon)
	}
	return nil
}
