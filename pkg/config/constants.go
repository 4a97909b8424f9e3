package config

import "time"

const (
	// ServiceName is the config file stem and the env prefix (MARQUEE_).
	ServiceName = "marquee"

	// Database defaults.
	DefaultPostgresPort = 5432
	DefaultRedisPort    = 6379

	// Connection pool defaults.
	DefaultMaxConnections = 25
	DefaultMinConnections = 5

	// Timeout defaults.
	DefaultMaxConnIdleTime = 30 * time.Minute
	DefaultDialTimeout     = 5 * time.Second

	// Catalog defaults.
	DefaultCatalogURL      = "https://moviesdatabase.p.rapidapi.com"
	DefaultCatalogHost     = "moviesdatabase.p.rapidapi.com"
	DefaultCatalogTimeout  = 10 * time.Second
	DefaultCatalogCacheTTL = 15 * time.Minute
	DefaultPageSize        = 10

	// Preference defaults.
	DefaultPreferencesPath = "marquee.db"
	DefaultRedisKeyPrefix  = "marquee:prefs:"

	// Event forwarding defaults.
	DefaultSubjectPrefix = "marquee.state"
)
