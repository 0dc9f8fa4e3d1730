// Package gtfsrt fetches and decodes GTFS-Realtime protobuf feeds.
//
// It supports three feed types:
//   - Trip Updates: real-time arrival/departure predictions
//   - Vehicle Positions: current vehicle locations
//   - Service Alerts: disruptions and service changes
//
// Decoder performs a fresh fetch per call. CachedDecoder is an optional
// decorator adding a TTL-bound cache of decoded entities, keyed by feed URL.
package gtfsrt
