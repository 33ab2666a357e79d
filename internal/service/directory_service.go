package service

import (
	"context"

	"github.com/google/uuid"

	"fieldtrack/internal/model"
	"fieldtrack/pkg/interfaces"
)

// DirectoryService manages the job and worker registries that back the
// reference checks at the ingest boundary
type DirectoryService struct {
	jobs    interfaces.JobDirectory
	workers interfaces.WorkerDirectory
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(jobs interfaces.JobDirectory, workers interfaces.WorkerDirectory) *DirectoryService {
	return &DirectoryService{jobs: jobs, workers: workers}
}

// CreateJob registers a new job site
func (s *DirectoryService) CreateJob(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	job := &model.Job{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Address: req.Address,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetJob retrieves one job
func (s *DirectoryService) GetJob(ctx context.Context, id string) (*model.Job, error) {
	return s.jobs.Get(ctx, id)
}

// ListJobs retrieves all jobs
func (s *DirectoryService) ListJobs(ctx context.Context) ([]model.Job, error) {
	return s.jobs.List(ctx)
}

// CreateWorker registers a new field worker
func (s *DirectoryService) CreateWorker(ctx context.Context, req *model.CreateWorkerRequest) (*model.Worker, error) {
	worker := &model.Worker{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Phone: req.Phone,
	}
	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// ListWorkers retrieves all workers
func (s *DirectoryService) ListWorkers(ctx context.Context) ([]model.Worker, error) {
	return s.workers.List(ctx)
}
