package transit

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// departureWindowSeconds bounds the static scan to the next 24 hours.
const departureWindowSeconds = 86400

// ScheduledDepartures returns the upcoming scheduled departures at a stop,
// one group per route, sorted and truncated like NextArrivals. It reads only
// the static catalog and cannot fail: an unknown stop or route yields an
// empty result.
//
// There is no calendar.txt handling: every loaded trip is considered
// regardless of its service day, so results are approximate for agencies
// with day-specific schedules.
func (s *Service) ScheduledDepartures(stopID, routeFilter string, maxPerRoute int) []RouteDepartures {
	return s.scheduledDeparturesAt(time.Now(), stopID, routeFilter, maxPerRoute)
}

// ScheduledDeparturesForRoute returns a deeper departure list for a single
// route.
func (s *Service) ScheduledDeparturesForRoute(stopID, routeID string) []RouteDepartures {
	return s.ScheduledDepartures(stopID, routeID, 10)
}

// NextScheduledDepartureForRoute returns the route's group holding only its
// soonest departure, or nil when nothing departs within 24 hours.
func (s *Service) NextScheduledDepartureForRoute(stopID, routeID string) *RouteDepartures {
	groups := s.ScheduledDepartures(stopID, routeID, 1)
	if len(groups) == 0 {
		return nil
	}
	return &groups[0]
}

type departureCandidate struct {
	tripID   string
	headsign string
	at       int64
}

func (s *Service) scheduledDeparturesAt(now time.Time, stopID, routeFilter string, maxPerRoute int) []RouteDepartures {
	if maxPerRoute <= 0 {
		maxPerRoute = DefaultMaxPerRoute
	}
	nowUnix := now.Unix()
	byRoute := map[string][]departureCandidate{}
	for _, trip := range s.catalog.AllTrips() {
		if routeFilter != "" && trip.RouteID != routeFilter {
			continue
		}
		for _, st := range s.catalog.StopTimesForTrip(trip.TripID) {
			if st.StopID != stopID || st.DepartureTime == "" {
				continue
			}
			t, ok := departureUnix(now, st.DepartureTime)
			if !ok {
				continue
			}
			if t <= nowUnix || t >= nowUnix+departureWindowSeconds {
				continue
			}
			byRoute[trip.RouteID] = append(byRoute[trip.RouteID], departureCandidate{
				tripID:   trip.TripID,
				headsign: trip.Headsign,
				at:       t,
			})
		}
	}

	routeIDs := make([]string, 0, len(byRoute))
	for routeID := range byRoute {
		routeIDs = append(routeIDs, routeID)
	}
	sort.Strings(routeIDs)

	out := []RouteDepartures{}
	for _, routeID := range routeIDs {
		route := s.catalog.GetOrCreateRoute(routeID)
		cands := byRoute[routeID]
		// GTFS schedules legitimately contain several trips sharing one
		// departure instant (calendar variants, directional duplicates);
		// keep the first encountered per timestamp.
		seen := map[int64]struct{}{}
		uniq := cands[:0]
		for _, cand := range cands {
			if _, dup := seen[cand.at]; dup {
				continue
			}
			seen[cand.at] = struct{}{}
			uniq = append(uniq, cand)
		}
		sort.Slice(uniq, func(i, j int) bool { return uniq[i].at < uniq[j].at })
		if len(uniq) > maxPerRoute {
			uniq = uniq[:maxPerRoute]
		}
		departures := make([]Departure, 0, len(uniq))
		for _, cand := range uniq {
			minutes := int((cand.at - nowUnix) / 60)
			departures = append(departures, Departure{
				TripID:        cand.tripID,
				Headsign:      cand.headsign,
				DepartureTime: cand.at,
				MinutesUntil:  minutes,
				Status:        departureStatus(minutes),
			})
		}
		out = append(out, RouteDepartures{
			RouteID:        route.RouteID,
			RouteShortName: route.ShortName,
			RouteLongName:  route.LongName,
			Color:          route.Color,
			TextColor:      route.TextColor,
			Departures:     departures,
		})
	}
	return out
}

// departureUnix anchors a GTFS wall-clock time to now's calendar day in
// now's location. Hours of 24 or more roll into the following day.
func departureUnix(now time.Time, hms string) (int64, bool) {
	parts := strings.Split(hms, ":")
	if len(parts) != 3 {
		return 0, false
	}
	h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, errM := strconv.Atoi(parts[1])
	sec, errS := strconv.Atoi(parts[2])
	if errH != nil || errM != nil || errS != nil {
		return 0, false
	}
	days := 0
	for h >= 24 {
		h -= 24
		days++
	}
	t := time.Date(now.Year(), now.Month(), now.Day(), h, m, sec, 0, now.Location())
	if days > 0 {
		t = t.AddDate(0, 0, days)
	}
	return t.Unix(), true
}
