package gtfsrt

import (
	"time"

	"github.com/bluele/gcache"
)

const cacheSizePerFeed = 16

// CachedDecoder decorates a FeedSource with a TTL-bound cache of decoded
// entities, keyed by feed URL. Cache policy stays out of the reconciliation
// engine: swapping Decoder for CachedDecoder (or removing it) changes no
// domain logic. Errors are never cached; a failed fetch is retried by the
// next call.
type CachedDecoder struct {
	src         FeedSource
	tripUpdates gcache.Cache
	vehicles    gcache.Cache
	alerts      gcache.Cache
}

// NewCachedDecoder wraps src with per-feed caches expiring after ttl.
func NewCachedDecoder(src FeedSource, ttl time.Duration) *CachedDecoder {
	build := func() gcache.Cache {
		return gcache.New(cacheSizePerFeed).LRU().Expiration(ttl).Build()
	}
	return &CachedDecoder{
		src:         src,
		tripUpdates: build(),
		vehicles:    build(),
		alerts:      build(),
	}
}

func (c *CachedDecoder) FetchTripUpdates(url string) ([]TripUpdate, error) {
	if v, err := c.tripUpdates.Get(url); err == nil {
		return v.([]TripUpdate), nil
	}
	out, err := c.src.FetchTripUpdates(url)
	if err != nil {
		return nil, err
	}
	_ = c.tripUpdates.Set(url, out)
	return out, nil
}

func (c *CachedDecoder) FetchVehiclePositions(url string) ([]VehiclePosition, error) {
	if v, err := c.vehicles.Get(url); err == nil {
		return v.([]VehiclePosition), nil
	}
	out, err := c.src.FetchVehiclePositions(url)
	if err != nil {
		return nil, err
	}
	_ = c.vehicles.Set(url, out)
	return out, nil
}

func (c *CachedDecoder) FetchAlerts(url string) ([]ServiceAlert, error) {
	if v, err := c.alerts.Get(url); err == nil {
		return v.([]ServiceAlert), nil
	}
	out, err := c.src.FetchAlerts(url)
	if err != nil {
		return nil, err
	}
	_ = c.alerts.Set(url, out)
	return out, nil
}
