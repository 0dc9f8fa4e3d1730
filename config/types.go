package config

// ServerConfig contains server configuration for the web layer that embeds
// this core.
type ServerConfig struct {
	Port int `yaml:"port" validate:"omitempty,gt=0"`
}

// GTFSConfig contains GTFS static bundle configuration
type GTFSConfig struct {
	StaticURL string `yaml:"staticURL" validate:"omitempty,url"`
	AgencyID  string `yaml:"agency_id" validate:"omitempty"`
}

// GTFSRTConfig contains GTFS-Realtime feed configuration
type GTFSRTConfig struct {
	TripUpdatesURL      string `yaml:"tripUpdatesURL" validate:"omitempty,url"`
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	ServiceAlertsURL    string `yaml:"serviceAlertsURL" validate:"omitempty,url"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
	CacheTTLMS          int    `yaml:"cacheTTLMS" validate:"gte=0"`
}

// QueryConfig contains query-surface defaults
type QueryConfig struct {
	MaxPerRoute      int     `yaml:"maxPerRoute" validate:"gte=0"`
	NearbyRadiusCapM float64 `yaml:"nearbyRadiusCapMeters" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	GTFS   GTFSConfig   `yaml:"gtfs"`
	GTFSRT GTFSRTConfig `yaml:"gtfsrt"`
	Query  QueryConfig  `yaml:"query"`
}
