package model

import (
	"time"
)

// EventAction worker action recorded on a job site
type EventAction string

const (
	ActionStart  EventAction = "START"  // Shift or task begins
	ActionPause  EventAction = "PAUSE"  // Break begins
	ActionResume EventAction = "RESUME" // Break ends
	ActionStop   EventAction = "STOP"   // Shift or task ends
)

// Valid reports whether the action is one of the four known kinds
func (a EventAction) Valid() bool {
	switch a {
	case ActionStart, ActionPause, ActionResume, ActionStop:
		return true
	}
	return false
}

// OpensSession reports whether the action opens an active interval
func (a EventAction) OpensSession() bool {
	return a == ActionStart || a == ActionResume
}

// ClosesSession reports whether the action closes an active interval
func (a EventAction) ClosesSession() bool {
	return a == ActionPause || a == ActionStop
}

// Event immutable action record for a worker on a job.
// Sequence is assigned by the store on append and breaks OccurredAt ties,
// so replaying the log is deterministic.
type Event struct {
	EventID    string      `json:"event_id"`
	JobID      string      `json:"job_id"`
	WorkerID   string      `json:"worker_id"`
	Action     EventAction `json:"action"`
	OccurredAt time.Time   `json:"occurred_at"`
	Sequence   int64       `json:"sequence"`
	Latitude   *float64    `json:"latitude,omitempty"`
	Longitude  *float64    `json:"longitude,omitempty"`
	Note       string      `json:"note,omitempty"`
}

// HasCoordinates reports whether the event carries a location sample
func (e *Event) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// RecordEventRequest record event request
type RecordEventRequest struct {
	Action     string     `json:"action" binding:"required"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"` // Defaults to server time; offline devices backfill their own
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
	Note       string     `json:"note,omitempty"`
}

// RecordEventResponse record event response
type RecordEventResponse struct {
	EventID  string `json:"event_id"`
	Sequence int64  `json:"sequence"`
}

// SessionResponse one reconstructed active interval
type SessionResponse struct {
	OpenedAt        time.Time  `json:"opened_at"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
	Open            bool       `json:"open"`
	DurationSeconds int64      `json:"duration_seconds"`
}
