package transit

import (
	"github.com/urban-transit-tools/gtfs-query/gtfs"
	"github.com/urban-transit-tools/gtfs-query/gtfsrt"
)

// Stop looks up a stop by id.
func (s *Service) Stop(stopID string) (gtfs.Stop, bool) {
	return s.catalog.Stop(stopID)
}

// AllRoutes returns every route sorted by route_id.
func (s *Service) AllRoutes() []gtfs.Route {
	return s.catalog.AllRoutes()
}

// Route looks up a route by id.
func (s *Service) Route(routeID string) (gtfs.Route, bool) {
	return s.catalog.Route(routeID)
}

// RouteWithStops joins a route with the stops its trips visit. Stop ids in
// the route mapping that no longer resolve in the stop index are silently
// dropped.
func (s *Service) RouteWithStops(routeID string) (RouteWithStops, bool) {
	route, ok := s.catalog.Route(routeID)
	if !ok {
		return RouteWithStops{}, false
	}
	stopIDs := s.catalog.StopIDsForRoute(routeID)
	stops := make([]gtfs.Stop, 0, len(stopIDs))
	for _, stopID := range stopIDs {
		if stop, ok := s.catalog.Stop(stopID); ok {
			stops = append(stops, stop)
		}
	}
	return RouteWithStops{Route: route, Stops: stops}, true
}

// TripDetails joins a trip with its route and ordered stop times. The route
// is synthesized when the trip's route_id dangles.
func (s *Service) TripDetails(tripID string) (TripDetails, bool) {
	trip, ok := s.catalog.Trip(tripID)
	if !ok {
		return TripDetails{}, false
	}
	return TripDetails{
		Trip:      trip,
		Route:     s.catalog.GetOrCreateRoute(trip.RouteID),
		StopTimes: s.catalog.StopTimesForTrip(tripID),
	}, true
}

// NearbyStops returns stops within radiusMeters of the point, nearest first.
func (s *Service) NearbyStops(lat, lon, radiusMeters float64) []gtfs.StopDistance {
	return s.catalog.NearbyStops(lat, lon, radiusMeters)
}

// VehiclePositions returns the live vehicle fixes, narrowed to one route
// when routeFilter is non-empty.
func (s *Service) VehiclePositions(routeFilter string) ([]gtfsrt.VehiclePosition, error) {
	vehicles, err := s.feeds.FetchVehiclePositions(s.rtCfg.VehiclePositionsURL)
	if err != nil {
		return nil, err
	}
	if routeFilter == "" {
		return vehicles, nil
	}
	out := make([]gtfsrt.VehiclePosition, 0, len(vehicles))
	for _, v := range vehicles {
		if v.RouteID == routeFilter {
			out = append(out, v)
		}
	}
	return out, nil
}

// ServiceAlerts returns the active alerts. With either filter set, an alert
// is kept when any of its informed entities matches either filter; with no
// filters, nothing is excluded.
func (s *Service) ServiceAlerts(routeFilter, stopFilter string) ([]gtfsrt.ServiceAlert, error) {
	alerts, err := s.feeds.FetchAlerts(s.rtCfg.ServiceAlertsURL)
	if err != nil {
		return nil, err
	}
	if routeFilter == "" && stopFilter == "" {
		return alerts, nil
	}
	out := make([]gtfsrt.ServiceAlert, 0, len(alerts))
	for _, a := range alerts {
		if alertMatches(a, routeFilter, stopFilter) {
			out = append(out, a)
		}
	}
	return out, nil
}

func alertMatches(a gtfsrt.ServiceAlert, routeFilter, stopFilter string) bool {
	for _, ie := range a.Informed {
		if routeFilter != "" && ie.RouteID == routeFilter {
			return true
		}
		if stopFilter != "" && ie.StopID == stopFilter {
			return true
		}
	}
	return false
}
