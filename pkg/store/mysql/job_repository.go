package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "fieldtrack/internal/model"
	"fieldtrack/pkg/store/mysql/model"
)

// JobRepository handles the job site registry in MySQL
type JobRepository struct {
	ds *Datastore
}

// NewJobRepository creates a new job repository
func NewJobRepository(ds *Datastore) *JobRepository {
	return &JobRepository{ds: ds}
}

// Create persists a new job
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	row := &model.Job{
		ID:        job.ID,
		Name:      job.Name,
		Address:   job.Address,
		CreatedAt: job.CreatedAt,
	}
	if err := r.ds.DB(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// Get retrieves a job by ID, returning ErrUnknownJob when absent
func (r *JobRepository) Get(ctx context.Context, id string) (*domain.Job, error) {
	var row model.Job
	err := r.ds.DB(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUnknownJob
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return toDomainJob(&row), nil
}

// List retrieves all jobs
func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	var rows []*model.Job
	if err := r.ds.DB(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	jobs := make([]domain.Job, len(rows))
	for i, row := range rows {
		jobs[i] = *toDomainJob(row)
	}
	return jobs, nil
}

// Exists reports whether a job with the ID is registered
func (r *JobRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.ds.DB(ctx).Model(&model.Job{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}
	return count > 0, nil
}
