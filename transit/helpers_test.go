package transit

import (
	"github.com/urban-transit-tools/gtfs-query/config"
	"github.com/urban-transit-tools/gtfs-query/gtfs"
	"github.com/urban-transit-tools/gtfs-query/gtfsrt"
)

// stubFeeds is a canned FeedSource so tests never touch the network.
type stubFeeds struct {
	updates  []gtfsrt.TripUpdate
	vehicles []gtfsrt.VehiclePosition
	alerts   []gtfsrt.ServiceAlert
	err      error
}

func (s *stubFeeds) FetchTripUpdates(url string) ([]gtfsrt.TripUpdate, error) {
	return s.updates, s.err
}

func (s *stubFeeds) FetchVehiclePositions(url string) ([]gtfsrt.VehiclePosition, error) {
	return s.vehicles, s.err
}

func (s *stubFeeds) FetchAlerts(url string) ([]gtfsrt.ServiceAlert, error) {
	return s.alerts, s.err
}

func testCatalog() *gtfs.Catalog {
	c := gtfs.NewCatalog()
	c.AddRoute(gtfs.Route{RouteID: "10", ShortName: "10", LongName: "University Avenue", Color: "FF0000", TextColor: "FFFFFF"})
	c.AddRoute(gtfs.Route{RouteID: "20", ShortName: "20", LongName: "Crosstown", Color: "0000FF", TextColor: "FFFFFF"})
	c.AddTrip(gtfs.Trip{TripID: "T1", RouteID: "10", Headsign: "Downtown"})
	c.AddTrip(gtfs.Trip{TripID: "T2", RouteID: "10", Headsign: "University"})
	c.AddTrip(gtfs.Trip{TripID: "T3", RouteID: "20", Headsign: "East Terminal"})
	c.AddStop(gtfs.Stop{StopID: "S1", Name: "Main & First", Lat: 45.0, Lon: -93.0})
	c.AddStop(gtfs.Stop{StopID: "S2", Name: "Main & Second", Lat: 45.001, Lon: -93.0})
	c.AddStopTime(gtfs.StopTime{TripID: "T1", StopID: "S1", StopSequence: 1, ArrivalTime: "13:00:00", DepartureTime: "13:00:00"})
	c.AddStopTime(gtfs.StopTime{TripID: "T1", StopID: "S2", StopSequence: 2, ArrivalTime: "13:05:00", DepartureTime: "13:05:00"})
	c.AddStopTime(gtfs.StopTime{TripID: "T2", StopID: "S1", StopSequence: 1, ArrivalTime: "13:00:00", DepartureTime: "13:00:00"})
	c.AddStopTime(gtfs.StopTime{TripID: "T3", StopID: "S1", StopSequence: 1, ArrivalTime: "13:30:00", DepartureTime: "13:30:00"})
	c.Finalize()
	return c
}

func newTestService(catalog *gtfs.Catalog, feeds *stubFeeds) *Service {
	return NewService(catalog, feeds, config.GTFSRTConfig{
		TripUpdatesURL:      "http://feeds.test/trip-updates",
		VehiclePositionsURL: "http://feeds.test/vehicle-positions",
		ServiceAlertsURL:    "http://feeds.test/service-alerts",
	})
}
