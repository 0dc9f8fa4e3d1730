package gtfs

import (
	"math"
	"sort"
)

const earthRadiusMeters = 6371000.0

// StopDistance pairs a stop with its great-circle distance from a query
// point, rounded to the nearest meter.
type StopDistance struct {
	Stop     Stop
	Distance float64
}

// HaversineMeters returns the great-circle distance between two coordinates.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// NearbyStops returns every stop within radiusMeters of the point, sorted by
// ascending distance. It is a flat scan over all loaded stops; fine for feeds
// with a few thousand stops, and the scalability ceiling beyond that.
// Coordinate range validation is the caller's responsibility. A radius of
// zero or less yields no results.
func (c *Catalog) NearbyStops(lat, lon, radiusMeters float64) []StopDistance {
	if radiusMeters <= 0 {
		return nil
	}
	out := []StopDistance{}
	for _, s := range c.stops {
		d := HaversineMeters(lat, lon, s.Lat, s.Lon)
		if d <= radiusMeters {
			out = append(out, StopDistance{Stop: *s, Distance: math.Round(d)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Stop.StopID < out[j].Stop.StopID
	})
	return out
}
