/*
Package transit joins the static catalog with the realtime feeds and exposes
the query surface a web layer serializes to JSON.

Live queries (NextArrivals, VehiclePositions, ServiceAlerts) fetch and decode
the upstream feed on every call and reconcile it against the catalog; a feed
failure fails that query and nothing else. Scheduled queries read only the
catalog and cannot fail - unknown keys yield empty or absent results.

The service knows nothing about HTTP or JSON. Callers translate query
parameters into the typed calls here and own serialization, pagination and
input bounds checking.
*/
package transit
