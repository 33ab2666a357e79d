package interfaces

import (
	"context"
	"time"

	"fieldtrack/internal/model"
)

// EventStore append-only event log.
// Appends assign a monotonic sequence number; reads return events in
// (occurred_at, sequence) order so reconstruction is deterministic. The store
// never updates or deletes events.
type EventStore interface {
	// Append persists the event and fills EventID and Sequence
	Append(ctx context.Context, event *model.Event) error

	// ListByJob returns all events for a job in replay order
	ListByJob(ctx context.Context, jobID string) ([]model.Event, error)

	// ListByJobWorker returns all events for one (job, worker) in replay order
	ListByJobWorker(ctx context.Context, jobID, workerID string) ([]model.Event, error)
}

// JobDirectory job site registry
type JobDirectory interface {
	Create(ctx context.Context, job *model.Job) error
	Get(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context) ([]model.Job, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// WorkerDirectory field worker registry
type WorkerDirectory interface {
	Create(ctx context.Context, worker *model.Worker) error
	Get(ctx context.Context, id string) (*model.Worker, error)
	List(ctx context.Context) ([]model.Worker, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// PresenceCache cached presence snapshots keyed by job.
// The cache is never authoritative: it is invalidated on every append and
// rebuilt from the log, and a miss or cache outage falls through to
// reconstruction.
type PresenceCache interface {
	// Get returns the cached snapshot, or nil without error on a miss
	Get(ctx context.Context, jobID string) (*model.PresenceSnapshot, error)

	// Set stores the snapshot with a TTL
	Set(ctx context.Context, snapshot *model.PresenceSnapshot, ttl time.Duration) error

	// Invalidate drops the cached snapshot for a job
	Invalidate(ctx context.Context, jobID string) error
}
