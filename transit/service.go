package transit

import (
	"github.com/urban-transit-tools/gtfs-query/config"
	"github.com/urban-transit-tools/gtfs-query/gtfs"
	"github.com/urban-transit-tools/gtfs-query/gtfsrt"
)

// Service answers transit queries by joining the static catalog with the
// realtime feeds. Each query is a pure function of (current time, filters,
// feed/catalog snapshot); there is no per-query state on the service, so one
// instance serves any number of concurrent callers.
type Service struct {
	catalog *gtfs.Catalog
	feeds   gtfsrt.FeedSource
	rtCfg   config.GTFSRTConfig
}

// NewService creates a query service. feeds is usually a *gtfsrt.Decoder or
// a *gtfsrt.CachedDecoder; the service does not care which.
func NewService(catalog *gtfs.Catalog, feeds gtfsrt.FeedSource, rtCfg config.GTFSRTConfig) *Service {
	return &Service{catalog: catalog, feeds: feeds, rtCfg: rtCfg}
}
