package service

import (
	"context"
	"fmt"
	"time"

	"fieldtrack/internal/model"
	"fieldtrack/internal/timeline"
	"fieldtrack/pkg/interfaces"
)

// DurationService computes accumulated active time per worker from the log
type DurationService struct {
	events interfaces.EventStore
	jobs   interfaces.JobDirectory
}

// NewDurationService creates a new duration service
func NewDurationService(events interfaces.EventStore, jobs interfaces.JobDirectory) *DurationService {
	return &DurationService{events: events, jobs: jobs}
}

// GetDurations returns elapsed active seconds per worker for a job. A zero
// asOf means "now". Open sessions count up to asOf and no further.
func (s *DurationService) GetDurations(ctx context.Context, jobID string, asOf time.Time) (*model.DurationReport, error) {
	exists, err := s.jobs.Exists(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to check job: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownJob, jobID)
	}

	if asOf.IsZero() {
		asOf = time.Now()
	}

	events, err := s.events.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	durations := make(map[string]int64)
	for workerID, d := range timeline.DurationsByWorker(events, asOf) {
		durations[workerID] = int64(d.Seconds())
	}

	return &model.DurationReport{
		JobID:     jobID,
		AsOf:      asOf,
		Durations: durations,
	}, nil
}
