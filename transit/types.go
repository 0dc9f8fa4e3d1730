package transit

import "github.com/urban-transit-tools/gtfs-query/gtfs"

// DefaultMaxPerRoute caps arrivals/departures per route group when the
// caller passes a non-positive limit.
const DefaultMaxPerRoute = 5

// ArrivalTime is one predicted arrival at the requested stop. Scheduled is
// derived as Predicted minus the reported delay; Uncertainty is nil when the
// feed omits it.
type ArrivalTime struct {
	TripID               string
	Scheduled            int64
	Predicted            int64
	DelaySeconds         int
	Uncertainty          *int
	ScheduleRelationship string
	MinutesUntil         int
	Status               string
}

// BusArrival groups the upcoming arrivals for one route at one stop.
// TripHeadsign is the headsign of the soonest arrival, or "" when that trip
// is unknown to the static catalog.
type BusArrival struct {
	RouteID        string
	RouteShortName string
	RouteLongName  string
	Color          string
	TextColor      string
	TripHeadsign   string
	Arrivals       []ArrivalTime
}

// Departure is one scheduled departure from the requested stop.
type Departure struct {
	TripID        string
	Headsign      string
	DepartureTime int64
	MinutesUntil  int
	Status        string
}

// RouteDepartures groups the upcoming scheduled departures for one route at
// one stop.
type RouteDepartures struct {
	RouteID        string
	RouteShortName string
	RouteLongName  string
	Color          string
	TextColor      string
	Departures     []Departure
}

// RouteWithStops joins a route with the stops its trips visit, in first-seen
// order. Stop ids that no longer resolve in the stop index are dropped.
type RouteWithStops struct {
	Route gtfs.Route
	Stops []gtfs.Stop
}

// TripDetails joins a trip with its route and ordered stop times.
type TripDetails struct {
	Trip      gtfs.Trip
	Route     gtfs.Route
	StopTimes []gtfs.StopTime
}
