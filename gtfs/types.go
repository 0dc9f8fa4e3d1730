package gtfs

// Route is one transit line from routes.txt. Synthesized marks routes that
// were fabricated on first reference to an unknown route_id instead of being
// loaded from the bundle.
type Route struct {
	RouteID     string
	ShortName   string
	LongName    string
	Color       string
	TextColor   string
	Synthesized bool
}

// Trip is one scheduled run of a route. RouteID may dangle: trips.txt is
// allowed to reference a route_id that routes.txt never defines.
type Trip struct {
	TripID   string
	RouteID  string
	Headsign string
}

// Stop is a physical boarding location with a required coordinate.
type Stop struct {
	StopID string
	Name   string
	Desc   string
	Code   string
	Lat    float64
	Lon    float64
}

// StopTime is the scheduled visit of one trip at one stop. Times are GTFS
// wall-clock strings (HH:MM:SS); hours may exceed 23 to express
// post-midnight service on the previous service day.
type StopTime struct {
	TripID        string
	StopID        string
	StopSequence  int
	ArrivalTime   string
	DepartureTime string
}
