/*
Package gtfs loads a GTFS static bundle and indexes it in memory.

The Catalog holds four entity indexes (routes, trips, stops, stop times) plus
a derived route->stops mapping. It is populated exactly once at startup and
treated as read-only afterwards, so concurrent queries need no locking.

# Loading

	catalog := gtfs.NewCatalog()
	if err := catalog.LoadFromURL("https://agency.example/gtfs.zip"); err != nil {
	    log.Fatal(err)
	}

Load failures are fatal: a process with an unloaded catalog must not serve
queries. Row-level anomalies (short rows, non-numeric coordinates) are
skipped with a logged warning instead.

# Parsing

Rows are split on commas with surrounding quotes stripped; embedded commas
inside quoted fields are not supported. routes.txt and trips.txt are parsed
by column position, stops.txt and stop_times.txt by header name lookup.

# Nearby search

NearbyStops runs a flat haversine scan over every stop. There is no spatial
index; stop counts in the low thousands keep this well under a millisecond.
*/
package gtfs
