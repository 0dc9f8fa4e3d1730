package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o644))
	chdir(t, dir)
}

func TestLoadAppConfig(t *testing.T) {
	writeConfig(t, `
server:
  port: 9090
gtfs:
  staticURL: "http://agency.example/gtfs.zip"
  agency_id: "metro"
gtfsrt:
  tripUpdatesURL: "http://agency.example/trip-updates"
  vehiclePositionsURL: "http://agency.example/vehicle-positions"
  serviceAlertsURL: "http://agency.example/service-alerts"
  timeoutMS: 5000
  cacheTTLMS: 15000
query:
  maxPerRoute: 3
  nearbyRadiusCapMeters: 2000
`)

	require.NoError(t, LoadAppConfig())
	assert.Equal(t, 9090, Config.Server.Port)
	assert.Equal(t, "http://agency.example/gtfs.zip", Config.GTFS.StaticURL)
	assert.Equal(t, "metro", Config.GTFS.AgencyID)
	assert.Equal(t, "http://agency.example/trip-updates", Config.GTFSRT.TripUpdatesURL)
	assert.Equal(t, 5000, Config.GTFSRT.TimeoutMS)
	assert.Equal(t, 15000, Config.GTFSRT.CacheTTLMS)
	assert.Equal(t, 3, Config.Query.MaxPerRoute)
	assert.Equal(t, 2000.0, Config.Query.NearbyRadiusCapM)
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	writeConfig(t, `
gtfs:
  staticURL: "http://agency.example/gtfs.zip"
`)

	require.NoError(t, LoadAppConfig())
	assert.Equal(t, 8080, Config.Server.Port)
	assert.Equal(t, 5, Config.Query.MaxPerRoute)
}

func TestLoadAppConfig_FileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	assert.Error(t, LoadAppConfig())
}

func TestLoadAppConfig_InvalidYAML(t *testing.T) {
	writeConfig(t, "server: [not a mapping")

	assert.Error(t, LoadAppConfig())
}

func TestLoadAppConfig_ValidationFailure(t *testing.T) {
	writeConfig(t, `
gtfs:
  staticURL: "not a url"
`)

	assert.Error(t, LoadAppConfig())
}
