package mysql

import "fieldtrack/pkg/store/mysql/model"

// Repository aggregates all MySQL repositories
type Repository struct {
	ds *Datastore

	Event  *EventRepository
	Job    *JobRepository
	Worker *WorkerRepository
}

// NewRepository creates a new MySQL repository with all sub-repositories
func NewRepository(dsn string) (*Repository, error) {
	ds, err := NewDatastore(dsn)
	if err != nil {
		return nil, err
	}

	return &Repository{
		ds:     ds,
		Event:  NewEventRepository(ds),
		Job:    NewJobRepository(ds),
		Worker: NewWorkerRepository(ds),
	}, nil
}

// Migrate creates or updates the schema for all tables
func (r *Repository) Migrate() error {
	return r.ds.db.AutoMigrate(
		&model.SiteEvent{},
		&model.Job{},
		&model.Worker{},
	)
}

// GetDatastore returns the underlying datastore for transaction support
func (r *Repository) GetDatastore() *Datastore {
	return r.ds
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.ds.Close()
}
