package model

import "time"

// SiteEvent MySQL model for the site_events table.
// The table is append-only: rows are never updated or deleted, and the
// auto-increment ID doubles as the per-append sequence number used to break
// occurred_at ties during reconstruction.
type SiteEvent struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID    string    `gorm:"column:event_id;type:varchar(36);not null;uniqueIndex:idx_event_id_unique" json:"event_id"`
	JobID      string    `gorm:"column:job_id;type:varchar(36);not null;index:idx_job_worker_time,priority:1;index:idx_job_time,priority:1" json:"job_id"`
	WorkerID   string    `gorm:"column:worker_id;type:varchar(36);not null;index:idx_job_worker_time,priority:2" json:"worker_id"`
	Action     string    `gorm:"column:action;type:varchar(16);not null" json:"action"`
	OccurredAt time.Time `gorm:"column:occurred_at;type:datetime(3);not null;index:idx_job_worker_time,priority:3;index:idx_job_time,priority:2" json:"occurred_at"`
	Latitude   *float64  `gorm:"column:latitude;type:double" json:"latitude"`
	Longitude  *float64  `gorm:"column:longitude;type:double" json:"longitude"`
	Note       string    `gorm:"column:note;type:text" json:"note"`
	CreatedAt  time.Time `gorm:"column:created_at;type:datetime(3);not null;default:CURRENT_TIMESTAMP(3)" json:"created_at"`
}

// TableName specifies the table name for SiteEvent
func (SiteEvent) TableName() string {
	return "site_events"
}
