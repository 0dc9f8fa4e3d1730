package gtfsrt

import "fmt"

// StopTimeUpdate revises the predicted times for one stop of a trip.
// ArrivalTime/DepartureTime are Unix seconds and only meaningful when the
// matching Has flag is set. DelaySeconds defaults to 0 when the feed omits
// it; Uncertainty is nil when absent.
type StopTimeUpdate struct {
	StopID               string
	ArrivalTime          int64
	HasArrival           bool
	DepartureTime        int64
	HasDeparture         bool
	DelaySeconds         int
	Uncertainty          *int
	ScheduleRelationship string
}

// TripUpdate is one trip-update entity from the realtime feed.
type TripUpdate struct {
	TripID          string
	RouteID         string
	VehicleID       string
	StopTimeUpdates []StopTimeUpdate
}

// VehiclePosition is a live GPS fix. RouteID and TripID come from the
// entity's trip descriptor and may be empty. Bearing and Speed are nil when
// the feed omits them.
type VehiclePosition struct {
	VehicleID  string
	RouteID    string
	TripID     string
	Lat        float64
	Lon        float64
	Bearing    *float64
	Speed      *float64
	Timestamp  int64
	Occupancy  string
	Congestion string
}

// ActivePeriod is one validity window of an alert. Either end may be zero,
// meaning open-ended.
type ActivePeriod struct {
	Start int64
	End   int64
}

// InformedEntity scopes an alert to a route, stop and/or agency. Any subset
// of the fields may be set.
type InformedEntity struct {
	AgencyID string
	RouteID  string
	StopID   string
	TripID   string
}

// ServiceAlert is one alert entity. Header and Description carry the first
// translation in the feed's translation lists, or "" when there is none.
// Enum fields hold the symbolic protobuf names, not raw integers.
type ServiceAlert struct {
	AlertID     string
	Header      string
	Description string
	Cause       string
	Effect      string
	Severity    string
	Periods     []ActivePeriod
	Informed    []InformedEntity
}

// FeedFetchError reports a failed feed download: transport error or non-2xx.
type FeedFetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FeedFetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch feed %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch feed %s: %v", e.URL, e.Err)
}

func (e *FeedFetchError) Unwrap() error { return e.Err }

// FeedDecodeError reports a payload that could not be decoded as a
// FeedMessage.
type FeedDecodeError struct {
	URL string
	Err error
}

func (e *FeedDecodeError) Error() string { return fmt.Sprintf("decode feed %s: %v", e.URL, e.Err) }

func (e *FeedDecodeError) Unwrap() error { return e.Err }
