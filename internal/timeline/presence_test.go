package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtrack/internal/model"
)

// evLoc builds a coordinate-bearing event
func evLoc(workerID string, action model.EventAction, minutes int, seq int64, lat, lon float64) model.Event {
	e := ev(workerID, action, minutes, seq)
	e.Latitude = &lat
	e.Longitude = &lon
	return e
}

func TestResolvePresenceActiveOnly(t *testing.T) {
	events := []model.Event{
		// w1 is still on site
		ev("w1", model.ActionStart, 0, 1),
		// w2 came and left
		ev("w2", model.ActionStart, 0, 2),
		ev("w2", model.ActionStop, 30, 3),
	}

	snapshot := ResolvePresence(events, at(60), false)

	require.Len(t, snapshot, 1)
	assert.Equal(t, "w1", snapshot[0].WorkerID)
	assert.True(t, snapshot[0].IsActive)
}

func TestResolvePresenceIncludeInactive(t *testing.T) {
	events := []model.Event{
		ev("w1", model.ActionStart, 0, 1),
		evLoc("w2", model.ActionStart, 0, 2, 40.7, -74.0),
		ev("w2", model.ActionStop, 30, 3),
	}

	snapshot := ResolvePresence(events, at(60), true)

	require.Len(t, snapshot, 2)
	assert.Equal(t, "w1", snapshot[0].WorkerID)
	assert.True(t, snapshot[0].IsActive)
	assert.Equal(t, "w2", snapshot[1].WorkerID)
	assert.False(t, snapshot[1].IsActive)
	// Audit view still carries the last known coordinates
	require.NotNil(t, snapshot[1].Latitude)
	assert.Equal(t, 40.7, *snapshot[1].Latitude)
	assert.Equal(t, at(30), snapshot[1].LastUpdate)
}

func TestResolvePresenceLocationCarriesForward(t *testing.T) {
	// The opening event has no coordinates; an absorbed duplicate start later
	// in the same open session carries a fresher sample and wins.
	events := []model.Event{
		ev("w1", model.ActionStart, 0, 1),
		evLoc("w1", model.ActionStart, 5, 2, 40.7, -74.0),
	}

	snapshot := ResolvePresence(events, at(10), false)

	require.Len(t, snapshot, 1)
	require.NotNil(t, snapshot[0].Latitude)
	assert.Equal(t, 40.7, *snapshot[0].Latitude)
	assert.Equal(t, -74.0, *snapshot[0].Longitude)
}

func TestResolvePresenceLatestSampleWins(t *testing.T) {
	events := []model.Event{
		evLoc("w1", model.ActionStart, 0, 1, 40.7, -74.0),
		evLoc("w1", model.ActionStart, 5, 2, 41.0, -73.5),
	}

	snapshot := ResolvePresence(events, at(10), false)

	require.Len(t, snapshot, 1)
	assert.Equal(t, 41.0, *snapshot[0].Latitude)
	assert.Equal(t, -73.5, *snapshot[0].Longitude)
}

func TestResolvePresenceNullLocation(t *testing.T) {
	// Presence and location are independent: no sample, still on site.
	events := []model.Event{ev("w1", model.ActionStart, 0, 1)}

	snapshot := ResolvePresence(events, at(10), false)

	require.Len(t, snapshot, 1)
	assert.True(t, snapshot[0].IsActive)
	assert.Nil(t, snapshot[0].Latitude)
	assert.Nil(t, snapshot[0].Longitude)
}

func TestResolvePresenceSampleFromPreviousSessionIgnored(t *testing.T) {
	// Coordinates sent during an earlier, closed session must not leak into
	// the current open session's location.
	events := []model.Event{
		evLoc("w1", model.ActionStart, 0, 1, 40.7, -74.0),
		ev("w1", model.ActionStop, 10, 2),
		ev("w1", model.ActionStart, 20, 3),
	}

	snapshot := ResolvePresence(events, at(30), false)

	require.Len(t, snapshot, 1)
	assert.True(t, snapshot[0].IsActive)
	assert.Nil(t, snapshot[0].Latitude)
}

func TestResolvePresenceHistoricalInstant(t *testing.T) {
	events := []model.Event{
		ev("w1", model.ActionStart, 0, 1),
		ev("w1", model.ActionStop, 10, 2),
	}

	// At minute 5 the worker was on site; at minute 15 they were gone.
	during := ResolvePresence(events, at(5), false)
	after := ResolvePresence(events, at(15), false)

	require.Len(t, during, 1)
	assert.True(t, during[0].IsActive)
	assert.Empty(t, after)
}

func TestResolvePresenceFutureWorkerInvisible(t *testing.T) {
	// All of the worker's events are after the query instant: from that
	// instant's point of view the worker has not appeared yet.
	events := []model.Event{ev("w1", model.ActionStart, 10, 1)}

	snapshot := ResolvePresence(events, at(5), true)
	assert.Empty(t, snapshot)
}

func TestResolvePresenceSortedByWorker(t *testing.T) {
	events := []model.Event{
		ev("w3", model.ActionStart, 0, 1),
		ev("w1", model.ActionStart, 1, 2),
		ev("w2", model.ActionStart, 2, 3),
	}

	snapshot := ResolvePresence(events, at(10), false)

	require.Len(t, snapshot, 3)
	assert.Equal(t, []string{"w1", "w2", "w3"}, []string{
		snapshot[0].WorkerID, snapshot[1].WorkerID, snapshot[2].WorkerID,
	})
}
