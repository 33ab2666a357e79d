package timeline

import (
	"sort"
	"time"

	"fieldtrack/internal/model"
)

// ResolvePresence computes the presence snapshot for a job at instant asOf
// from the job-wide event slice. Workers with a session covering asOf are
// active; their location is the most recent coordinate-bearing event inside
// that session at or before asOf, which may be a later ping than the opening
// event, or nothing at all. Presence and location are independent facts: a
// worker who never sent coordinates is still reported active with a null
// location.
//
// With includeInactive set, workers whose last event precedes asOf are also
// listed (audit view), carrying their latest known coordinates regardless of
// session boundaries.
func ResolvePresence(events []model.Event, asOf time.Time, includeInactive bool) []model.WorkerPresence {
	var snapshot []model.WorkerPresence

	for workerID, group := range GroupByWorker(events) {
		sorted := make([]model.Event, len(group))
		copy(sorted, group)
		SortEvents(sorted)

		lastUpdate, seen := lastEventTimeAsOf(sorted, asOf)
		if !seen {
			// No events at or before asOf: the worker does not exist yet
			// from this instant's point of view.
			continue
		}

		current, active := sessionAt(reconstructSorted(sorted), asOf)

		entry := model.WorkerPresence{
			WorkerID:   workerID,
			IsActive:   active,
			LastUpdate: lastUpdate,
		}

		if active {
			entry.Latitude, entry.Longitude = lastCoordinates(sorted, current.OpenedAt, asOf)
		} else if includeInactive {
			entry.Latitude, entry.Longitude = lastCoordinates(sorted, time.Time{}, asOf)
		}

		if active || includeInactive {
			snapshot = append(snapshot, entry)
		}
	}

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].WorkerID < snapshot[j].WorkerID
	})
	return snapshot
}

// sessionAt returns the session covering t, if any
func sessionAt(sessions []Session, t time.Time) (Session, bool) {
	for _, s := range sessions {
		if s.ActiveAt(t) {
			return s, true
		}
	}
	return Session{}, false
}

// lastEventTimeAsOf returns the time of the latest event at or before asOf
func lastEventTimeAsOf(sorted []model.Event, asOf time.Time) (time.Time, bool) {
	for i := len(sorted) - 1; i >= 0; i-- {
		if !sorted[i].OccurredAt.After(asOf) {
			return sorted[i].OccurredAt, true
		}
	}
	return time.Time{}, false
}

// lastCoordinates returns the latest location sample in [from, asOf].
// A zero from means "any time".
func lastCoordinates(sorted []model.Event, from, asOf time.Time) (*float64, *float64) {
	for i := len(sorted) - 1; i >= 0; i-- {
		ev := &sorted[i]
		if ev.OccurredAt.After(asOf) {
			continue
		}
		if !from.IsZero() && ev.OccurredAt.Before(from) {
			break
		}
		if ev.HasCoordinates() {
			return ev.Latitude, ev.Longitude
		}
	}
	return nil, nil
}
