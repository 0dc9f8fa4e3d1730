package transit

import (
	"sort"
	"time"

	"github.com/urban-transit-tools/gtfs-query/gtfsrt"
)

// arrivalWindowSeconds bounds live predictions to the next two hours; stale
// or far-future updates are dropped.
const arrivalWindowSeconds = 7200

// NextArrivals returns the upcoming live arrivals at a stop, one group per
// route, each group sorted by arrival time and truncated to maxPerRoute.
// routeFilter narrows to one route when non-empty. A feed fetch or decode
// failure propagates to the caller; it never corrupts the catalog.
func (s *Service) NextArrivals(stopID, routeFilter string, maxPerRoute int) ([]BusArrival, error) {
	updates, err := s.feeds.FetchTripUpdates(s.rtCfg.TripUpdatesURL)
	if err != nil {
		return nil, err
	}
	return s.buildArrivals(time.Now().Unix(), updates, stopID, routeFilter, maxPerRoute), nil
}

// ArrivalsForRoute returns a deeper arrival list for a single route.
func (s *Service) ArrivalsForRoute(stopID, routeID string) ([]BusArrival, error) {
	return s.NextArrivals(stopID, routeID, 10)
}

// NextArrivalForRoute returns the route's group holding only its soonest
// arrival, or nil when nothing is due within the window.
func (s *Service) NextArrivalForRoute(stopID, routeID string) (*BusArrival, error) {
	groups, err := s.NextArrivals(stopID, routeID, 1)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, nil
	}
	g := groups[0]
	return &g, nil
}

type arrivalCandidate struct {
	tripID      string
	predicted   int64
	delay       int
	uncertainty *int
	schedRel    string
}

func (s *Service) buildArrivals(now int64, updates []gtfsrt.TripUpdate, stopID, routeFilter string, maxPerRoute int) []BusArrival {
	if maxPerRoute <= 0 {
		maxPerRoute = DefaultMaxPerRoute
	}
	byRoute := map[string][]arrivalCandidate{}
	for _, u := range updates {
		if u.TripID == "" || u.RouteID == "" {
			continue
		}
		if routeFilter != "" && u.RouteID != routeFilter {
			continue
		}
		for _, stu := range u.StopTimeUpdates {
			if stu.StopID != stopID || !stu.HasArrival {
				continue
			}
			t := stu.ArrivalTime
			if t <= now || t >= now+arrivalWindowSeconds {
				continue
			}
			byRoute[u.RouteID] = append(byRoute[u.RouteID], arrivalCandidate{
				tripID:      u.TripID,
				predicted:   t,
				delay:       stu.DelaySeconds,
				uncertainty: stu.Uncertainty,
				schedRel:    stu.ScheduleRelationship,
			})
		}
	}

	routeIDs := make([]string, 0, len(byRoute))
	for routeID := range byRoute {
		routeIDs = append(routeIDs, routeID)
	}
	sort.Strings(routeIDs)

	warn := NewWarningAggregator()
	out := []BusArrival{}
	for _, routeID := range routeIDs {
		route, ok := s.catalog.Route(routeID)
		if !ok {
			// Realtime references a route the bundle never defined. A
			// data-quality signal, not an error.
			warn.Add(WarningUnknownRoute, routeID)
			continue
		}
		cands := byRoute[routeID]
		sort.Slice(cands, func(i, j int) bool { return cands[i].predicted < cands[j].predicted })
		if len(cands) > maxPerRoute {
			cands = cands[:maxPerRoute]
		}
		arrivals := make([]ArrivalTime, 0, len(cands))
		for _, cand := range cands {
			minutes := int((cand.predicted - now) / 60)
			arrivals = append(arrivals, ArrivalTime{
				TripID:               cand.tripID,
				Scheduled:            cand.predicted - int64(cand.delay),
				Predicted:            cand.predicted,
				DelaySeconds:         cand.delay,
				Uncertainty:          cand.uncertainty,
				ScheduleRelationship: cand.schedRel,
				MinutesUntil:         minutes,
				Status:               arrivalStatus(minutes, cand.delay),
			})
		}
		headsign := ""
		if trip, ok := s.catalog.Trip(arrivals[0].TripID); ok {
			headsign = trip.Headsign
		} else {
			warn.Add(WarningUnknownTrip, arrivals[0].TripID)
		}
		out = append(out, BusArrival{
			RouteID:        route.RouteID,
			RouteShortName: route.ShortName,
			RouteLongName:  route.LongName,
			Color:          route.Color,
			TextColor:      route.TextColor,
			TripHeadsign:   headsign,
			Arrivals:       arrivals,
		})
	}
	warn.LogAll("trip-updates")
	return out
}
