package gtfs

import (
	"sort"
	"strings"
	"sync"
)

// Catalog stores GTFS static data in memory for fast lookups. It is built
// once at startup (Add* calls followed by Finalize) and read-only afterwards;
// the only post-load write path is route synthesis in GetOrCreateRoute, which
// takes its own lock.
type Catalog struct {
	routes     map[string]*Route
	trips      map[string]*Trip
	stops      map[string]*Stop
	stopTimes  map[string][]StopTime // trip_id -> ordered by stop_sequence
	routeStops map[string][]string   // route_id -> stop_ids in first-seen order

	synthMu sync.Mutex // guards routes for GetOrCreateRoute only
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		routes:     map[string]*Route{},
		trips:      map[string]*Trip{},
		stops:      map[string]*Stop{},
		stopTimes:  map[string][]StopTime{},
		routeStops: map[string][]string{},
	}
}

// AddRoute, AddTrip, AddStop and AddStopTime populate the catalog during
// loading. They must not be called after Finalize.

func (c *Catalog) AddRoute(r Route) { c.routes[r.RouteID] = &r }

func (c *Catalog) AddTrip(t Trip) { c.trips[t.TripID] = &t }

func (c *Catalog) AddStop(s Stop) { c.stops[s.StopID] = &s }

func (c *Catalog) AddStopTime(st StopTime) {
	c.stopTimes[st.TripID] = append(c.stopTimes[st.TripID], st)
}

// Finalize sorts every trip's stop times by stop_sequence and builds the
// route->stops mapping: for each trip, each stop is appended to the trip's
// route list the first time it is seen. Trips are visited in trip_id order so
// the mapping is deterministic; the order is first-seen, not geographic.
// Finalize rebuilds the mapping from scratch, so calling it again after more
// Add* calls is safe.
func (c *Catalog) Finalize() {
	c.routeStops = map[string][]string{}
	for tripID := range c.stopTimes {
		sts := c.stopTimes[tripID]
		sort.Slice(sts, func(i, j int) bool { return sts[i].StopSequence < sts[j].StopSequence })
	}
	tripIDs := make([]string, 0, len(c.stopTimes))
	for tripID := range c.stopTimes {
		tripIDs = append(tripIDs, tripID)
	}
	sort.Strings(tripIDs)
	seen := map[string]map[string]struct{}{}
	for _, tripID := range tripIDs {
		sts := c.stopTimes[tripID]
		trip, ok := c.trips[tripID]
		if !ok {
			continue
		}
		routeID := trip.RouteID
		if seen[routeID] == nil {
			seen[routeID] = map[string]struct{}{}
		}
		for _, st := range sts {
			if _, dup := seen[routeID][st.StopID]; dup {
				continue
			}
			seen[routeID][st.StopID] = struct{}{}
			c.routeStops[routeID] = append(c.routeStops[routeID], st.StopID)
		}
	}
}

// Route returns the route for routeID, as a value copy.
func (c *Catalog) Route(routeID string) (Route, bool) {
	c.synthMu.Lock()
	r, ok := c.routes[routeID]
	c.synthMu.Unlock()
	if !ok {
		return Route{}, false
	}
	return *r, true
}

// GetOrCreateRoute returns the route for routeID, synthesizing and storing a
// minimal fallback when the bundle never defined it: short name is the text
// before the first "-" in the route_id, long name is the route_id itself,
// colors are black on white. It never fails.
func (c *Catalog) GetOrCreateRoute(routeID string) Route {
	c.synthMu.Lock()
	defer c.synthMu.Unlock()
	if r, ok := c.routes[routeID]; ok {
		return *r
	}
	r := &Route{
		RouteID:     routeID,
		ShortName:   strings.Split(routeID, "-")[0],
		LongName:    routeID,
		Color:       defaultRouteColor,
		TextColor:   defaultRouteTextColor,
		Synthesized: true,
	}
	c.routes[routeID] = r
	return *r
}

// AllRoutes returns every route sorted by route_id.
func (c *Catalog) AllRoutes() []Route {
	c.synthMu.Lock()
	out := make([]Route, 0, len(c.routes))
	for _, r := range c.routes {
		out = append(out, *r)
	}
	c.synthMu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].RouteID < out[j].RouteID })
	return out
}

// Trip returns the trip for tripID.
func (c *Catalog) Trip(tripID string) (Trip, bool) {
	t, ok := c.trips[tripID]
	if !ok {
		return Trip{}, false
	}
	return *t, true
}

// AllTrips returns every loaded trip. Order is unspecified.
func (c *Catalog) AllTrips() []Trip {
	out := make([]Trip, 0, len(c.trips))
	for _, t := range c.trips {
		out = append(out, *t)
	}
	return out
}

// Stop returns the stop for stopID.
func (c *Catalog) Stop(stopID string) (Stop, bool) {
	s, ok := c.stops[stopID]
	if !ok {
		return Stop{}, false
	}
	return *s, true
}

// StopTimesForTrip returns the trip's stop times ordered by stop_sequence.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) StopTimesForTrip(tripID string) []StopTime {
	return c.stopTimes[tripID]
}

// StopIDsForRoute returns the stop_ids visited by any trip on the route, in
// first-seen order. Entries may dangle when stops.txt dropped the row.
func (c *Catalog) StopIDsForRoute(routeID string) []string {
	return c.routeStops[routeID]
}

// RouteCount, TripCount, StopCount and StopTimeCount report index sizes for
// startup logging.
func (c *Catalog) RouteCount() int { return len(c.routes) }
func (c *Catalog) TripCount() int  { return len(c.trips) }
func (c *Catalog) StopCount() int  { return len(c.stops) }

func (c *Catalog) StopTimeCount() int {
	n := 0
	for _, sts := range c.stopTimes {
		n += len(sts)
	}
	return n
}
