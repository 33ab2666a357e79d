package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtrack/internal/model"
)

func TestGetDurations(t *testing.T) {
	ctx := context.Background()
	asOf := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("unknown job", func(t *testing.T) {
		svc := NewDurationService(newFakeEventStore(), newFakeJobDirectory())

		_, err := svc.GetDurations(ctx, "job-404", asOf)
		assert.ErrorIs(t, err, model.ErrUnknownJob)
	})

	t.Run("per worker totals", func(t *testing.T) {
		store := newFakeEventStore()
		// w1 worked one closed hour, w2 is two hours into an open shift.
		closed := asOf.Add(-3 * time.Hour)
		seedShift(t, store, "job-1", "w1", asOf.Add(-4*time.Hour), &closed)
		seedShift(t, store, "job-1", "w2", asOf.Add(-2*time.Hour), nil)
		svc := NewDurationService(store, newFakeJobDirectory("job-1"))

		report, err := svc.GetDurations(ctx, "job-1", asOf)
		require.NoError(t, err)
		assert.Equal(t, "job-1", report.JobID)
		assert.True(t, report.AsOf.Equal(asOf))
		assert.Equal(t, map[string]int64{
			"w1": 3600,
			"w2": 7200,
		}, report.Durations)
	})

	t.Run("future open session reports zero", func(t *testing.T) {
		store := newFakeEventStore()
		seedShift(t, store, "job-1", "w1", asOf.Add(time.Hour), nil)
		svc := NewDurationService(store, newFakeJobDirectory("job-1"))

		report, err := svc.GetDurations(ctx, "job-1", asOf)
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"w1": 0}, report.Durations)
	})

	t.Run("empty log", func(t *testing.T) {
		svc := NewDurationService(newFakeEventStore(), newFakeJobDirectory("job-1"))

		report, err := svc.GetDurations(ctx, "job-1", asOf)
		require.NoError(t, err)
		assert.Empty(t, report.Durations)
	})
}
