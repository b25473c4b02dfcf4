package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver("America/New_York")
	require.NoError(t, err)
	return r
}

func TestDateOfUsesBusinessTimezone(t *testing.T) {
	r := newTestResolver(t)

	// 03:30 UTC is still the previous evening in New York.
	utc := time.Date(2026, 3, 3, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-02", r.DateOf(utc))
	assert.Equal(t, "22:30", r.ClockOf(utc))
}

func TestDateOfAcrossDSTTransition(t *testing.T) {
	r := newTestResolver(t)

	// 2026-03-08 is the spring-forward date in New York. A late-evening
	// shift end must still bucket to the 8th despite the offset change.
	end := time.Date(2026, 3, 9, 3, 30, 0, 0, time.UTC) // 23:30 EDT on the 8th
	assert.Equal(t, "2026-03-08", r.DateOf(end))
	assert.Equal(t, "23:30", r.ClockOf(end))
}

func TestWeekStartIsSunday(t *testing.T) {
	r := newTestResolver(t)

	wednesday, err := r.At("2026-03-04", "12:00")
	require.NoError(t, err)

	ws := r.WeekStart(wednesday)
	assert.Equal(t, "2026-03-01", r.DateOf(ws))
	assert.Equal(t, time.Sunday, ws.Weekday())
	assert.Equal(t, "00:00", r.ClockOf(ws))

	// A Sunday is its own week start.
	sunday, err := r.At("2026-03-01", "09:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", r.DateOf(r.WeekStart(sunday)))
}

func TestAtRoundTrips(t *testing.T) {
	r := newTestResolver(t)

	ts, err := r.At("2026-03-02", "08:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", r.DateOf(ts))
	assert.Equal(t, "08:30", r.ClockOf(ts))
	assert.Equal(t, 8, r.HourOf(ts))
}

func TestAtRejectsGarbage(t *testing.T) {
	r := newTestResolver(t)
	_, err := r.At("not-a-date", "08:30")
	require.Error(t, err)
}

func TestAddDays(t *testing.T) {
	r := newTestResolver(t)

	got, err := r.AddDays("2026-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", got)

	got, err = r.AddDays("2026-03-01", 6)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-07", got)
}

func TestDaysBetween(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		a, b string
		want int
	}{
		{"2026-03-06", "2026-03-07", 1},
		{"2026-03-06", "2026-03-08", 2},
		{"2026-03-07", "2026-03-07", 0},
		{"2026-03-08", "2026-03-06", -2},
		// Across the DST transition the calendar gap is still exact.
		{"2026-03-07", "2026-03-09", 2},
		{"2026-02-28", "2026-03-01", 1},
	}
	for _, tt := range tests {
		got, err := r.DaysBetween(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.a, tt.b)
	}
}

func TestWeekdayOf(t *testing.T) {
	r := newTestResolver(t)

	wd, err := r.WeekdayOf("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	wd, err = r.WeekdayOf("2026-03-06")
	require.NoError(t, err)
	assert.Equal(t, time.Friday, wd)
}

func TestNewResolverRejectsUnknownZone(t *testing.T) {
	_, err := NewResolver("Mars/Olympus_Mons")
	require.Error(t, err)
}
