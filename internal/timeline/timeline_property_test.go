// Property-based tests for the reconstruction fold. These check the
// invariants that must hold for every possible event sequence, legal or not:
// the fold is total, deterministic, and produces disjoint ordered sessions.
package timeline

import (
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"fieldtrack/internal/model"
)

var allActions = []model.EventAction{
	model.ActionStart,
	model.ActionPause,
	model.ActionResume,
	model.ActionStop,
}

// genEventLog generates arbitrary single-worker event sequences, including
// ones that violate the start/pause/resume/stop grammar
func genEventLog() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 3)).FlatMap(func(v interface{}) gopter.Gen {
		actions := v.([]int)
		return gen.SliceOfN(len(actions), gen.IntRange(0, 500)).Map(func(offsets []int) []model.Event {
			events := make([]model.Event, len(actions))
			for i := range actions {
				events[i] = model.Event{
					JobID:      "job-1",
					WorkerID:   "w1",
					Action:     allActions[actions[i]],
					OccurredAt: base.Add(time.Duration(offsets[i]) * time.Minute),
					Sequence:   int64(i + 1),
				}
			}
			return events
		})
	}, reflect.TypeOf([]model.Event{}))
}

func TestProperty_SessionsOrderedAndDisjoint(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("sessions are strictly ordered and non-overlapping", prop.ForAll(
		func(events []model.Event) bool {
			sessions := Reconstruct(events)
			for i := 0; i < len(sessions)-1; i++ {
				if sessions[i].ClosedAt == nil {
					return false // only the last session may be open
				}
				if sessions[i+1].OpenedAt.Before(*sessions[i].ClosedAt) {
					return false
				}
			}
			return true
		},
		genEventLog(),
	))

	properties.Property("at most one open session", prop.ForAll(
		func(events []model.Event) bool {
			open := 0
			for _, s := range Reconstruct(events) {
				if s.Open() {
					open++
				}
			}
			return open <= 1
		},
		genEventLog(),
	))

	properties.Property("never more sessions than opening events", prop.ForAll(
		func(events []model.Event) bool {
			opens := 0
			for _, ev := range events {
				if ev.Action.OpensSession() {
					opens++
				}
			}
			return len(Reconstruct(events)) <= opens
		},
		genEventLog(),
	))

	properties.TestingRun(t)
}

func TestProperty_InsertionOrderIrrelevant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("reversing write order does not change the result", prop.ForAll(
		func(events []model.Event) bool {
			reversed := make([]model.Event, len(events))
			for i, ev := range events {
				reversed[len(events)-1-i] = ev
			}
			return reflect.DeepEqual(Reconstruct(events), Reconstruct(reversed))
		},
		genEventLog(),
	))

	properties.TestingRun(t)
}

func TestProperty_DurationMonotoneInAsOf(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("a later asOf never reports less time", prop.ForAll(
		func(events []model.Event, off1, off2 int) bool {
			if off1 > off2 {
				off1, off2 = off2, off1
			}
			sessions := Reconstruct(events)
			earlier := TotalDuration(sessions, base.Add(time.Duration(off1)*time.Minute))
			later := TotalDuration(sessions, base.Add(time.Duration(off2)*time.Minute))
			return earlier <= later
		},
		genEventLog(),
		gen.IntRange(-100, 600),
		gen.IntRange(-100, 600),
	))

	properties.TestingRun(t)
}

func TestProperty_AppendNeverShrinksClosedSessions(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Appending one more event may close the trailing open session or start a
	// new one, but completed intervals are immutable history.
	properties.Property("closed sessions survive any later append unchanged", prop.ForAll(
		func(events []model.Event, actionIdx int) bool {
			before := Reconstruct(events)

			latest := base
			for _, ev := range events {
				if ev.OccurredAt.After(latest) {
					latest = ev.OccurredAt
				}
			}
			appended := append(append([]model.Event(nil), events...), model.Event{
				JobID:      "job-1",
				WorkerID:   "w1",
				Action:     allActions[actionIdx],
				OccurredAt: latest.Add(time.Minute),
				Sequence:   int64(len(events) + 1),
			})
			after := Reconstruct(appended)

			for i, s := range before {
				if s.Open() {
					// May have been closed by the append, open time is fixed
					if !after[i].OpenedAt.Equal(s.OpenedAt) {
						return false
					}
					continue
				}
				if !reflect.DeepEqual(after[i], s) {
					return false
				}
			}
			return true
		},
		genEventLog(),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}
