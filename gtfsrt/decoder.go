package gtfsrt

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// FeedSource produces decoded realtime entities for a feed URL. Decoder is
// the plain implementation; CachedDecoder wraps any FeedSource with a TTL
// cache.
type FeedSource interface {
	FetchTripUpdates(url string) ([]TripUpdate, error)
	FetchVehiclePositions(url string) ([]VehiclePosition, error)
	FetchAlerts(url string) ([]ServiceAlert, error)
}

// Decoder fetches and decodes GTFS-RT feeds into typed entities. Each call
// performs a fresh fetch; there is no cross-call state.
type Decoder struct {
	client *Client
}

// NewDecoder creates a decoder on top of the given client.
func NewDecoder(client *Client) *Decoder {
	return &Decoder{client: client}
}

func (d *Decoder) fetchMessage(url string) (*gtfsrtpb.FeedMessage, error) {
	raw, err := d.client.Fetch(url)
	if err != nil {
		return nil, err
	}
	fm := &gtfsrtpb.FeedMessage{}
	if err := proto.Unmarshal(raw, fm); err != nil {
		return nil, &FeedDecodeError{URL: url, Err: err}
	}
	return fm, nil
}

// FetchTripUpdates fetches and decodes a trip-updates feed. Entities without
// a trip descriptor are skipped; stop-time updates without a stop_id are
// skipped.
func (d *Decoder) FetchTripUpdates(url string) ([]TripUpdate, error) {
	fm, err := d.fetchMessage(url)
	if err != nil {
		return nil, err
	}
	out := make([]TripUpdate, 0, len(fm.Entity))
	for _, e := range fm.Entity {
		tu := e.TripUpdate
		if tu == nil || tu.Trip == nil {
			continue
		}
		u := TripUpdate{}
		if tu.Trip.TripId != nil {
			u.TripID = *tu.Trip.TripId
		}
		if tu.Trip.RouteId != nil {
			u.RouteID = *tu.Trip.RouteId
		}
		if tu.Vehicle != nil && tu.Vehicle.Id != nil {
			u.VehicleID = *tu.Vehicle.Id
		}
		for _, stu := range tu.StopTimeUpdate {
			if stu.StopId == nil {
				continue
			}
			s := StopTimeUpdate{
				StopID:               *stu.StopId,
				ScheduleRelationship: stu.GetScheduleRelationship().String(),
			}
			if stu.Arrival != nil {
				if stu.Arrival.Time != nil {
					s.ArrivalTime = *stu.Arrival.Time
					s.HasArrival = true
				}
				if stu.Arrival.Delay != nil {
					s.DelaySeconds = int(*stu.Arrival.Delay)
				}
				if stu.Arrival.Uncertainty != nil {
					v := int(*stu.Arrival.Uncertainty)
					s.Uncertainty = &v
				}
			}
			if stu.Departure != nil && stu.Departure.Time != nil {
				s.DepartureTime = *stu.Departure.Time
				s.HasDeparture = true
			}
			u.StopTimeUpdates = append(u.StopTimeUpdates, s)
		}
		out = append(out, u)
	}
	return out, nil
}

// FetchVehiclePositions fetches and decodes a vehicle-positions feed.
// Entities without a position are skipped.
func (d *Decoder) FetchVehiclePositions(url string) ([]VehiclePosition, error) {
	fm, err := d.fetchMessage(url)
	if err != nil {
		return nil, err
	}
	out := make([]VehiclePosition, 0, len(fm.Entity))
	for _, e := range fm.Entity {
		ve := e.Vehicle
		if ve == nil || ve.Position == nil || ve.Position.Latitude == nil || ve.Position.Longitude == nil {
			continue
		}
		v := VehiclePosition{
			Lat: float64(*ve.Position.Latitude),
			Lon: float64(*ve.Position.Longitude),
		}
		if ve.Vehicle != nil && ve.Vehicle.Id != nil {
			v.VehicleID = *ve.Vehicle.Id
		}
		if ve.Trip != nil {
			if ve.Trip.TripId != nil {
				v.TripID = *ve.Trip.TripId
			}
			if ve.Trip.RouteId != nil {
				v.RouteID = *ve.Trip.RouteId
			}
		}
		if ve.Position.Bearing != nil {
			b := float64(*ve.Position.Bearing)
			v.Bearing = &b
		}
		if ve.Position.Speed != nil {
			s := float64(*ve.Position.Speed)
			v.Speed = &s
		}
		if ve.Timestamp != nil {
			v.Timestamp = int64(*ve.Timestamp)
		}
		if ve.OccupancyStatus != nil {
			v.Occupancy = ve.OccupancyStatus.String()
		}
		if ve.CongestionLevel != nil {
			v.Congestion = ve.CongestionLevel.String()
		}
		out = append(out, v)
	}
	return out, nil
}

// FetchAlerts fetches and decodes a service-alerts feed.
func (d *Decoder) FetchAlerts(url string) ([]ServiceAlert, error) {
	fm, err := d.fetchMessage(url)
	if err != nil {
		return nil, err
	}
	out := make([]ServiceAlert, 0, len(fm.Entity))
	for _, e := range fm.Entity {
		al := e.Alert
		if al == nil {
			continue
		}
		a := ServiceAlert{
			Header:      firstTranslation(al.HeaderText),
			Description: firstTranslation(al.DescriptionText),
		}
		if e.Id != nil {
			a.AlertID = *e.Id
		}
		if al.Cause != nil {
			a.Cause = al.Cause.String()
		}
		if al.Effect != nil {
			a.Effect = al.Effect.String()
		}
		if al.SeverityLevel != nil {
			a.Severity = al.SeverityLevel.String()
		}
		for _, ap := range al.ActivePeriod {
			p := ActivePeriod{}
			if ap.Start != nil {
				p.Start = int64(*ap.Start)
			}
			if ap.End != nil {
				p.End = int64(*ap.End)
			}
			a.Periods = append(a.Periods, p)
		}
		for _, ie := range al.InformedEntity {
			ent := InformedEntity{}
			if ie.AgencyId != nil {
				ent.AgencyID = *ie.AgencyId
			}
			if ie.RouteId != nil {
				ent.RouteID = *ie.RouteId
			}
			if ie.StopId != nil {
				ent.StopID = *ie.StopId
			}
			if ie.Trip != nil && ie.Trip.TripId != nil {
				ent.TripID = *ie.Trip.TripId
			}
			a.Informed = append(a.Informed, ent)
		}
		out = append(out, a)
	}
	return out, nil
}

// firstTranslation takes the first entry of a translation list, which by
// GTFS-RT convention is the default/untranslated text.
func firstTranslation(ts *gtfsrtpb.TranslatedString) string {
	if ts == nil || len(ts.Translation) == 0 || ts.Translation[0].Text == nil {
		return ""
	}
	return *ts.Translation[0].Text
}
