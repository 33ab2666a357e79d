package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "fieldtrack/internal/model"
	"fieldtrack/pkg/store/mysql/model"
)

// EventRepository handles the append-only site event log in MySQL.
// It only ever inserts and reads; the log is the source of truth for all
// presence and duration derivations.
type EventRepository struct {
	ds *Datastore
}

// NewEventRepository creates a new event repository
func NewEventRepository(ds *Datastore) *EventRepository {
	return &EventRepository{ds: ds}
}

// Append persists one event and fills EventID and Sequence on the input.
// The sequence is the auto-increment row ID, monotonic per append.
func (r *EventRepository) Append(ctx context.Context, event *domain.Event) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	row := &model.SiteEvent{
		EventID:    event.EventID,
		JobID:      event.JobID,
		WorkerID:   event.WorkerID,
		Action:     string(event.Action),
		OccurredAt: event.OccurredAt,
		Latitude:   event.Latitude,
		Longitude:  event.Longitude,
		Note:       event.Note,
	}

	if err := r.ds.DB(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	event.Sequence = row.ID
	return nil
}

// ListByJob retrieves all events for a job in (occurred_at, sequence) order
func (r *EventRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Event, error) {
	var rows []*model.SiteEvent
	err := r.ds.DB(ctx).
		Where("job_id = ?", jobID).
		Order("occurred_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job events: %w", err)
	}
	return toDomainEvents(rows), nil
}

// ListByJobWorker retrieves all events for one (job, worker) in replay order
func (r *EventRepository) ListByJobWorker(ctx context.Context, jobID, workerID string) ([]domain.Event, error) {
	var rows []*model.SiteEvent
	err := r.ds.DB(ctx).
		Where("job_id = ? AND worker_id = ?", jobID, workerID).
		Order("occurred_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list worker events: %w", err)
	}
	return toDomainEvents(rows), nil
}
