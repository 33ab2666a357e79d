package service

import (
	"context"
	"sync"
	"time"

	"fieldtrack/internal/model"
)

// In-memory stand-ins for the persistence interfaces. They keep the same
// ordering contract as the real stores so the services behave identically.

type fakeEventStore struct {
	mu        sync.Mutex
	events    []model.Event
	nextSeq   int64
	appendErr error
	listErr   error
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{}
}

func (f *fakeEventStore) Append(_ context.Context, event *model.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.nextSeq++
	event.Sequence = f.nextSeq
	if event.EventID == "" {
		event.EventID = "evt-" + event.WorkerID
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventStore) ListByJob(_ context.Context, jobID string) ([]model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Event
	for _, ev := range f.events {
		if ev.JobID == jobID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventStore) ListByJobWorker(_ context.Context, jobID, workerID string) ([]model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Event
	for _, ev := range f.events {
		if ev.JobID == jobID && ev.WorkerID == workerID {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeJobDirectory struct {
	jobs      map[string]model.Job
	existsErr error
}

func newFakeJobDirectory(ids ...string) *fakeJobDirectory {
	f := &fakeJobDirectory{jobs: make(map[string]model.Job)}
	for _, id := range ids {
		f.jobs[id] = model.Job{ID: id, Name: "Job " + id}
	}
	return f
}

func (f *fakeJobDirectory) Create(_ context.Context, job *model.Job) error {
	f.jobs[job.ID] = *job
	return nil
}

func (f *fakeJobDirectory) Get(_ context.Context, id string) (*model.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, model.ErrUnknownJob
	}
	return &job, nil
}

func (f *fakeJobDirectory) List(_ context.Context) ([]model.Job, error) {
	out := make([]model.Job, 0, len(f.jobs))
	for _, job := range f.jobs {
		out = append(out, job)
	}
	return out, nil
}

func (f *fakeJobDirectory) Exists(_ context.Context, id string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.jobs[id]
	return ok, nil
}

type fakeWorkerDirectory struct {
	workers   map[string]model.Worker
	existsErr error
}

func newFakeWorkerDirectory(ids ...string) *fakeWorkerDirectory {
	f := &fakeWorkerDirectory{workers: make(map[string]model.Worker)}
	for _, id := range ids {
		f.workers[id] = model.Worker{ID: id, Name: "Worker " + id}
	}
	return f
}

func (f *fakeWorkerDirectory) Create(_ context.Context, worker *model.Worker) error {
	f.workers[worker.ID] = *worker
	return nil
}

func (f *fakeWorkerDirectory) Get(_ context.Context, id string) (*model.Worker, error) {
	worker, ok := f.workers[id]
	if !ok {
		return nil, model.ErrUnknownWorker
	}
	return &worker, nil
}

func (f *fakeWorkerDirectory) List(_ context.Context) ([]model.Worker, error) {
	out := make([]model.Worker, 0, len(f.workers))
	for _, worker := range f.workers {
		out = append(out, worker)
	}
	return out, nil
}

func (f *fakeWorkerDirectory) Exists(_ context.Context, id string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.workers[id]
	return ok, nil
}

type fakePresenceCache struct {
	mu          sync.Mutex
	snapshots   map[string]*model.PresenceSnapshot
	getErr      error
	setErr      error
	gets        int
	sets        int
	invalidates int
}

func newFakePresenceCache() *fakePresenceCache {
	return &fakePresenceCache{snapshots: make(map[string]*model.PresenceSnapshot)}
}

func (f *fakePresenceCache) Get(_ context.Context, jobID string) (*model.PresenceSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.snapshots[jobID], nil
}

func (f *fakePresenceCache) Set(_ context.Context, snapshot *model.PresenceSnapshot, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.snapshots[snapshot.JobID] = snapshot
	return nil
}

func (f *fakePresenceCache) Invalidate(_ context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidates++
	delete(f.snapshots, jobID)
	return nil
}
