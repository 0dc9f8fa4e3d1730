package transit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-transit-tools/gtfs-query/gtfs"
)

func TestDepartureStatus(t *testing.T) {
	tests := []struct {
		name         string
		minutesUntil int
		expected     string
	}{
		{"departing now", 0, "Departing"},
		{"one minute out", 1, "Departing"},
		{"two minutes out", 2, "Due"},
		{"later", 45, "45 min"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, departureStatus(tc.minutesUntil))
		})
	}
}

func TestDepartureUnix(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	got, ok := departureUnix(now, "13:45:30")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 2, 13, 45, 30, 0, time.UTC).Unix(), got)

	// GTFS post-midnight times spill into the next service day.
	got, ok = departureUnix(now, "26:30:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 3, 2, 30, 0, 0, time.UTC).Unix(), got)

	got, ok = departureUnix(now, "49:15:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 4, 1, 15, 0, 0, time.UTC).Unix(), got)

	for _, bad := range []string{"", "13:00", "aa:bb:cc", "13-00-00", "13:00:00:00"} {
		_, ok := departureUnix(now, bad)
		assert.False(t, ok, "%q must not parse", bad)
	}
}

func TestScheduledDepartures_WindowAndOrder(t *testing.T) {
	c := testCatalog()
	svc := newTestService(c, &stubFeeds{})
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	got := svc.scheduledDeparturesAt(now, "S1", "", 5)
	require.Len(t, got, 2)
	assert.Equal(t, "10", got[0].RouteID)
	assert.Equal(t, "20", got[1].RouteID)

	r10 := got[0]
	assert.Equal(t, "University Avenue", r10.RouteLongName)
	require.Len(t, r10.Departures, 1, "T1 and T2 share 13:00:00 and collapse to one departure")
	d := r10.Departures[0]
	assert.Equal(t, time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC).Unix(), d.DepartureTime)
	assert.Equal(t, 60, d.MinutesUntil)
	assert.Equal(t, "60 min", d.Status)
	assert.Contains(t, []string{"T1", "T2"}, d.TripID)
}

func TestScheduledDepartures_PastAndFarFutureExcluded(t *testing.T) {
	c := testCatalog()
	c.AddTrip(gtfs.Trip{TripID: "T4", RouteID: "10", Headsign: "Early Bird"})
	c.AddStopTime(gtfs.StopTime{TripID: "T4", StopID: "S1", StopSequence: 1, DepartureTime: "06:00:00"})
	c.AddTrip(gtfs.Trip{TripID: "T5", RouteID: "10", Headsign: "Day After"})
	c.AddStopTime(gtfs.StopTime{TripID: "T5", StopID: "S1", StopSequence: 1, DepartureTime: "40:00:00"})
	c.Finalize()
	svc := newTestService(c, &stubFeeds{})
	// 06:00 is in the past; 40:00:00 resolves to 16:00 the next day, which is
	// beyond the 24 hour window from noon.
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	got := svc.scheduledDeparturesAt(now, "S1", "10", 10)
	require.Len(t, got, 1)
	for _, d := range got[0].Departures {
		assert.NotEqual(t, "T4", d.TripID)
		assert.NotEqual(t, "T5", d.TripID)
	}
	require.Len(t, got[0].Departures, 1)
}

func TestScheduledDepartures_PostMidnightWithinWindow(t *testing.T) {
	c := testCatalog()
	c.AddTrip(gtfs.Trip{TripID: "T6", RouteID: "20", Headsign: "Owl"})
	c.AddStopTime(gtfs.StopTime{TripID: "T6", StopID: "S1", StopSequence: 1, DepartureTime: "26:30:00"})
	c.Finalize()
	svc := newTestService(c, &stubFeeds{})
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	got := svc.scheduledDeparturesAt(now, "S1", "20", 10)
	require.Len(t, got, 1)
	require.Len(t, got[0].Departures, 2)
	assert.Equal(t, "T6", got[0].Departures[1].TripID)
	assert.Equal(t, time.Date(2025, 6, 3, 2, 30, 0, 0, time.UTC).Unix(), got[0].Departures[1].DepartureTime)
}

func TestScheduledDepartures_SynthesizesUnknownRoute(t *testing.T) {
	c := testCatalog()
	c.AddTrip(gtfs.Trip{TripID: "T9", RouteID: "9-Night", Headsign: "Owl Loop"})
	c.AddStopTime(gtfs.StopTime{TripID: "T9", StopID: "S1", StopSequence: 1, DepartureTime: "14:00:00"})
	c.Finalize()
	svc := newTestService(c, &stubFeeds{})
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	got := svc.scheduledDeparturesAt(now, "S1", "9-Night", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "9", got[0].RouteShortName)
	assert.Equal(t, "9-Night", got[0].RouteLongName)
	assert.Equal(t, "000000", got[0].Color)
}

func TestScheduledDepartures_Truncation(t *testing.T) {
	c := testCatalog()
	for i, dep := range []string{"13:10:00", "13:20:00", "13:40:00"} {
		tripID := string(rune('A' + i))
		c.AddTrip(gtfs.Trip{TripID: tripID, RouteID: "20"})
		c.AddStopTime(gtfs.StopTime{TripID: tripID, StopID: "S1", StopSequence: 1, DepartureTime: dep})
	}
	c.Finalize()
	svc := newTestService(c, &stubFeeds{})
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	got := svc.scheduledDeparturesAt(now, "S1", "20", 2)
	require.Len(t, got, 1)
	require.Len(t, got[0].Departures, 2)
	assert.Equal(t, "A", got[0].Departures[0].TripID, "soonest departures win after truncation")
	assert.Equal(t, "B", got[0].Departures[1].TripID)
}

func TestScheduledDepartures_UnknownStop(t *testing.T) {
	svc := newTestService(testCatalog(), &stubFeeds{})
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	assert.Empty(t, svc.scheduledDeparturesAt(now, "NOWHERE", "", 5))
}

// futureHMS renders a wall-clock time offset from now in GTFS notation,
// using hours beyond 24 when the offset crosses midnight.
func futureHMS(offset time.Duration) string {
	now := time.Now()
	target := now.Add(offset)
	hours := target.Hour()
	if target.Day() != now.Day() {
		hours += 24
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, target.Minute(), target.Second())
}

func TestNextScheduledDepartureForRoute(t *testing.T) {
	c := gtfs.NewCatalog()
	c.AddRoute(gtfs.Route{RouteID: "20", ShortName: "20", LongName: "Crosstown"})
	c.AddTrip(gtfs.Trip{TripID: "T3", RouteID: "20", Headsign: "East Terminal"})
	c.AddTrip(gtfs.Trip{TripID: "T7", RouteID: "20", Headsign: "East Terminal"})
	c.AddStop(gtfs.Stop{StopID: "S1", Name: "Main & First"})
	c.AddStopTime(gtfs.StopTime{TripID: "T3", StopID: "S1", StopSequence: 1, DepartureTime: futureHMS(30 * time.Minute)})
	c.AddStopTime(gtfs.StopTime{TripID: "T7", StopID: "S1", StopSequence: 1, DepartureTime: futureHMS(90 * time.Minute)})
	c.Finalize()
	svc := newTestService(c, &stubFeeds{})

	got := svc.NextScheduledDepartureForRoute("S1", "20")
	require.NotNil(t, got)
	require.Len(t, got.Departures, 1)
	assert.Equal(t, "T3", got.Departures[0].TripID)

	assert.Nil(t, svc.NextScheduledDepartureForRoute("NOWHERE", "20"))
}
