package config

import (
	"github.com/narwhalmedia/marquee/pkg/database"
	"github.com/narwhalmedia/marquee/pkg/logger"
)

// Load reads the explorer configuration starting from GetDefaults.
func Load() (*ExplorerConfig, error) {
	cfg := GetDefaults()
	if err := NewManager(ServiceName).LoadConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ToDatabaseConfig converts the reviews config to database package config
func (c ReviewsConfig) ToDatabaseConfig() *database.Config {
	db := c.Database
	if db.SSLMode == "" {
		db.SSLMode = "disable"
	}

	return &database.Config{
		Driver:          c.Driver,
		Host:            db.Host,
		Port:            db.Port,
		User:            db.User,
		Password:        db.Password,
		Database:        db.Database,
		SSLMode:         db.SSLMode,
		Path:            c.Path,
		MaxConnections:  db.MaxConnections,
		MinConnections:  db.MinConnections,
		MaxConnLifetime: db.MaxConnLifetime,
		MaxConnIdleTime: db.MaxConnIdleTime,
		Debug:           c.Debug,
	}
}

// ToLoggerConfig converts config to logger package config
func (c LoggerConfig) ToLoggerConfig() *logger.Config {
	cfg := logger.DefaultConfig()
	if c.Level != "" {
		cfg.Level = c.Level
	}
	if c.Format != "" {
		cfg.Encoding = c.Format
	}
	if c.OutputPath != "" {
		cfg.OutputPaths = []string{c.OutputPath}
	}
	cfg.Development = c.Development
	return cfg
}

// IsProduction returns true if running in production environment
func IsProduction(cfg *ServiceConfig) bool {
	return cfg.Environment == "production" || cfg.Environment == "prod"
}
