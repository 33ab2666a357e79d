package timeline

import (
	"time"

	"fieldtrack/internal/model"
)

// TotalDuration sums the active time of all sessions up to asOf.
func TotalDuration(sessions []Session, asOf time.Time) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += s.DurationAsOf(asOf)
	}
	return total
}

// DurationsByWorker computes accumulated active time per worker from a
// job-wide event slice. Workers whose events reconstruct to zero sessions
// (stray terminators only) are omitted: absence means "never worked", an
// explicit zero means a zero-length session was recorded.
func DurationsByWorker(events []model.Event, asOf time.Time) map[string]time.Duration {
	result := make(map[string]time.Duration)
	for workerID, group := range GroupByWorker(events) {
		sessions := Reconstruct(group)
		if len(sessions) == 0 {
			continue
		}
		result[workerID] = TotalDuration(sessions, asOf)
	}
	return result
}
