// Package timeline derives sessions, elapsed time and presence from the
// append-only event log. Everything here is a pure function over an event
// slice: no stored state, no failure modes, safe to run concurrently per
// (job, worker) group.
package timeline

import (
	"sort"
	"time"

	"fieldtrack/internal/model"
)

// Session a maximal interval during which a worker is active on a job.
// A nil ClosedAt means the closing event has not been observed yet and the
// interval extends to "now" at query time.
type Session struct {
	OpenedAt time.Time
	ClosedAt *time.Time
}

// Open reports whether the session has no closing event
func (s Session) Open() bool {
	return s.ClosedAt == nil
}

// ActiveAt reports whether the session covers instant t
func (s Session) ActiveAt(t time.Time) bool {
	if s.OpenedAt.After(t) {
		return false
	}
	return s.ClosedAt == nil || t.Before(*s.ClosedAt)
}

// DurationAsOf returns the active time the session contributes up to asOf.
// Intervals never count past asOf; a future-dated open contributes zero,
// which absorbs clock skew between field devices and the server.
func (s Session) DurationAsOf(asOf time.Time) time.Duration {
	end := asOf
	if s.ClosedAt != nil && s.ClosedAt.Before(asOf) {
		end = *s.ClosedAt
	}
	if !end.After(s.OpenedAt) {
		return 0
	}
	return end.Sub(s.OpenedAt)
}

// SortEvents orders events by (occurred_at, sequence), the canonical replay
// order. Insertion order is irrelevant: two writers racing on appends produce
// the same reconstruction on every read.
func SortEvents(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].OccurredAt.Equal(events[j].OccurredAt) {
			return events[i].Sequence < events[j].Sequence
		}
		return events[i].OccurredAt.Before(events[j].OccurredAt)
	})
}

// Reconstruct folds one worker's events into disjoint, ordered sessions.
//
// The fold keeps a single "open since" cursor. Opening actions (start/resume)
// open a session if none is open and are absorbed otherwise, so a duplicate
// button press never resets the open time. Closing actions (pause/stop) close
// the open session and are absorbed when nothing is open. The fold is total:
// any event sequence, however illegal as a start/pause/resume/stop grammar,
// yields a well-formed result.
func Reconstruct(events []model.Event) []Session {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	SortEvents(sorted)
	return reconstructSorted(sorted)
}

// reconstructSorted is Reconstruct without the defensive copy, for callers
// that already hold events in replay order.
func reconstructSorted(events []model.Event) []Session {
	var sessions []Session
	var openedAt *time.Time

	for i := range events {
		ev := &events[i]
		switch {
		case ev.Action.OpensSession():
			if openedAt == nil {
				t := ev.OccurredAt
				openedAt = &t
			}
		case ev.Action.ClosesSession():
			if openedAt != nil {
				t := ev.OccurredAt
				sessions = append(sessions, Session{OpenedAt: *openedAt, ClosedAt: &t})
				openedAt = nil
			}
		}
	}

	if openedAt != nil {
		sessions = append(sessions, Session{OpenedAt: *openedAt})
	}
	return sessions
}

// GroupByWorker splits a job-wide event slice into per-worker sequences,
// preserving relative order within each group.
func GroupByWorker(events []model.Event) map[string][]model.Event {
	groups := make(map[string][]model.Event)
	for _, ev := range events {
		groups[ev.WorkerID] = append(groups[ev.WorkerID], ev)
	}
	return groups
}
