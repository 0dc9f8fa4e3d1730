package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/urban-transit-tools/gtfs-query/config"
	"github.com/urban-transit-tools/gtfs-query/gtfs"
	"github.com/urban-transit-tools/gtfs-query/gtfsrt"
	"github.com/urban-transit-tools/gtfs-query/internal"
	"github.com/urban-transit-tools/gtfs-query/transit"
)

func main() {
	call := flag.String("call", "arrivals", "arrivals|departures|nearby|vehicles|alerts|stop|route|route-stops|trip|routes")
	stopID := flag.String("stop", "", "stop_id for arrivals/departures/stop")
	routeID := flag.String("route", "", "route_id filter, or key for route/route-stops")
	tripID := flag.String("trip", "", "trip_id for trip details")
	lat := flag.Float64("lat", 0, "latitude for nearby search")
	lon := flag.Float64("lon", 0, "longitude for nearby search")
	radius := flag.Float64("radius", 500, "nearby search radius in meters")
	max := flag.Int("max", 0, "max results per route (0 = config default)")
	static := flag.String("static", "", "GTFS static bundle URL or local zip path (overrides config)")
	tripUpdates := flag.String("tripUpdates", "", "GTFS-RT TripUpdates URL (overrides config)")
	vehiclePositions := flag.String("vehiclePositions", "", "GTFS-RT VehiclePositions URL (overrides config)")
	serviceAlerts := flag.String("serviceAlerts", "", "GTFS-RT ServiceAlerts URL (overrides config)")
	flag.Parse()

	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	rtCfg := config.Config.GTFSRT
	if *tripUpdates != "" {
		rtCfg.TripUpdatesURL = *tripUpdates
	}
	if *vehiclePositions != "" {
		rtCfg.VehiclePositionsURL = *vehiclePositions
	}
	if *serviceAlerts != "" {
		rtCfg.ServiceAlertsURL = *serviceAlerts
	}
	bundle := config.Config.GTFS.StaticURL
	if *static != "" {
		bundle = *static
	}
	maxPerRoute := config.Config.Query.MaxPerRoute
	if *max > 0 {
		maxPerRoute = *max
	}

	catalog := gtfs.NewCatalog()
	if err := loadBundle(catalog, bundle); err != nil {
		log.Fatalf("static catalog: %v", err)
	}
	log.Printf("catalog loaded: %d routes, %d trips, %d stops, %d stop times (as of %s)",
		catalog.RouteCount(), catalog.TripCount(), catalog.StopCount(), catalog.StopTimeCount(),
		internal.Iso8601Now())

	client := gtfsrt.NewClient(time.Duration(rtCfg.TimeoutMS) * time.Millisecond)
	var feeds gtfsrt.FeedSource = gtfsrt.NewDecoder(client)
	if rtCfg.CacheTTLMS > 0 {
		feeds = gtfsrt.NewCachedDecoder(feeds, time.Duration(rtCfg.CacheTTLMS)*time.Millisecond)
	}
	svc := transit.NewService(catalog, feeds, rtCfg)

	var out any
	var err error
	switch *call {
	case "arrivals":
		out, err = svc.NextArrivals(*stopID, *routeID, maxPerRoute)
	case "departures":
		out = svc.ScheduledDepartures(*stopID, *routeID, maxPerRoute)
	case "nearby":
		r := *radius
		if capM := config.Config.Query.NearbyRadiusCapM; capM > 0 && r > capM {
			r = capM
		}
		out = svc.NearbyStops(*lat, *lon, r)
	case "vehicles":
		out, err = svc.VehiclePositions(*routeID)
	case "alerts":
		out, err = svc.ServiceAlerts(*routeID, *stopID)
	case "stop":
		stop, ok := svc.Stop(*stopID)
		if !ok {
			log.Fatalf("stop %q not found", *stopID)
		}
		out = stop
	case "route":
		route, ok := svc.Route(*routeID)
		if !ok {
			log.Fatalf("route %q not found", *routeID)
		}
		out = route
	case "route-stops":
		rws, ok := svc.RouteWithStops(*routeID)
		if !ok {
			log.Fatalf("route %q not found", *routeID)
		}
		out = rws
	case "trip":
		details, ok := svc.TripDetails(*tripID)
		if !ok {
			log.Fatalf("trip %q not found", *tripID)
		}
		out = details
	case "routes":
		out = svc.AllRoutes()
	default:
		log.Fatalf("unknown call %q", *call)
	}
	if err != nil {
		log.Fatalf("%s: %v", *call, err)
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(b))
}

// loadBundle accepts both HTTP URLs and local zip paths.
func loadBundle(catalog *gtfs.Catalog, src string) error {
	if src == "" {
		return fmt.Errorf("no static bundle configured")
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return catalog.LoadFromURL(src)
	}
	return catalog.LoadFromFile(src)
}
