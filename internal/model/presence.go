package model

import "time"

// WorkerPresence one entry of a job presence snapshot
type WorkerPresence struct {
	WorkerID   string    `json:"worker_id"`
	IsActive   bool      `json:"is_active"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	LastUpdate time.Time `json:"last_update"`
}

// PresenceSnapshot presence query response for one job
type PresenceSnapshot struct {
	JobID   string           `json:"job_id"`
	AsOf    time.Time        `json:"as_of"`
	Workers []WorkerPresence `json:"workers"`
}

// DurationReport per-worker accumulated active time for one job.
// Workers with no reconstructed session are absent from the map; an explicit
// zero means a session of zero length was recorded.
type DurationReport struct {
	JobID     string           `json:"job_id"`
	AsOf      time.Time        `json:"as_of"`
	Durations map[string]int64 `json:"durations"` // worker_id -> elapsed seconds
}
