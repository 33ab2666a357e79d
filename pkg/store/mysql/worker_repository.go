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

// WorkerRepository handles the field worker registry in MySQL
type WorkerRepository struct {
	ds *Datastore
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(ds *Datastore) *WorkerRepository {
	return &WorkerRepository{ds: ds}
}

// Create persists a new worker
func (r *WorkerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	if worker.CreatedAt.IsZero() {
		worker.CreatedAt = time.Now()
	}
	row := &model.Worker{
		ID:        worker.ID,
		Name:      worker.Name,
		Phone:     worker.Phone,
		CreatedAt: worker.CreatedAt,
	}
	if err := r.ds.DB(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

// Get retrieves a worker by ID, returning ErrUnknownWorker when absent
func (r *WorkerRepository) Get(ctx context.Context, id string) (*domain.Worker, error) {
	var row model.Worker
	err := r.ds.DB(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUnknownWorker
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return toDomainWorker(&row), nil
}

// List retrieves all workers
func (r *WorkerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	var rows []*model.Worker
	if err := r.ds.DB(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	workers := make([]domain.Worker, len(rows))
	for i, row := range rows {
		workers[i] = *toDomainWorker(row)
	}
	return workers, nil
}

// Exists reports whether a worker with the ID is registered
func (r *WorkerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.ds.DB(ctx).Model(&model.Worker{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check worker existence: %w", err)
	}
	return count > 0, nil
}
