package mysql

import (
	domain "fieldtrack/internal/model"
	"fieldtrack/pkg/store/mysql/model"
)

// toDomainEvent converts a stored row to the domain event, mapping the
// auto-increment row ID to the reconstruction sequence number
func toDomainEvent(row *model.SiteEvent) domain.Event {
	return domain.Event{
		EventID:    row.EventID,
		JobID:      row.JobID,
		WorkerID:   row.WorkerID,
		Action:     domain.EventAction(row.Action),
		OccurredAt: row.OccurredAt,
		Sequence:   row.ID,
		Latitude:   row.Latitude,
		Longitude:  row.Longitude,
		Note:       row.Note,
	}
}

func toDomainEvents(rows []*model.SiteEvent) []domain.Event {
	events := make([]domain.Event, len(rows))
	for i, row := range rows {
		events[i] = toDomainEvent(row)
	}
	return events
}

func toDomainJob(row *model.Job) *domain.Job {
	return &domain.Job{
		ID:        row.ID,
		Name:      row.Name,
		Address:   row.Address,
		CreatedAt: row.CreatedAt,
	}
}

func toDomainWorker(row *model.Worker) *domain.Worker {
	return &domain.Worker{
		ID:        row.ID,
		Name:      row.Name,
		Phone:     row.Phone,
		CreatedAt: row.CreatedAt,
	}
}
