package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the interface that all loadable configs must implement.
type Config interface {
	Validate() error
}

// ExplorerConfig is the complete movie explorer configuration.
type ExplorerConfig struct {
	Service     ServiceConfig     `koanf:"service"`
	Logger      LoggerConfig      `koanf:"logger"`
	Catalog     CatalogConfig     `koanf:"catalog"`
	Reviews     ReviewsConfig     `koanf:"reviews"`
	Preferences PreferencesConfig `koanf:"preferences"`
	NATS        NATSConfig        `koanf:"nats"`
}

// ServiceConfig contains service-specific metadata.
type ServiceConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // dev, staging, production
}

// LoggerConfig contains logging configuration.
type LoggerConfig struct {
	Level       string `koanf:"level"`  // debug, info, warn, error
	Format      string `koanf:"format"` // json, console
	Development bool   `koanf:"development"`
	OutputPath  string `koanf:"output_path"` // stdout, stderr, or file path
}

// CatalogConfig configures the remote movie catalog.
type CatalogConfig struct {
	BaseURL  string        `koanf:"base_url"`
	APIKey   string        `koanf:"api_key"`
	Host     string        `koanf:"host"`
	PageSize int           `koanf:"page_size"`
	Timeout  time.Duration `koanf:"timeout"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// ReviewsConfig configures the review document store.
type ReviewsConfig struct {
	Driver   string         `koanf:"driver"` // postgres, sqlite
	Path     string         `koanf:"path"`   // sqlite only
	Database DatabaseConfig `koanf:"database"`
	Debug    bool           `koanf:"debug"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Database        string        `koanf:"database"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxConnections  int           `koanf:"max_connections"`
	MinConnections  int           `koanf:"min_connections"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time"`
}

// PreferencesConfig selects the local preference store.
type PreferencesConfig struct {
	Driver string      `koanf:"driver"` // bolt, redis, memory
	Path   string      `koanf:"path"`   // bolt only
	Redis  RedisConfig `koanf:"redis"`
}

// RedisConfig contains Redis connection settings.
type RedisConfig struct {
	Addr        string        `koanf:"addr"`
	Password    string        `koanf:"password"`
	DB          int           `koanf:"db"`
	KeyPrefix   string        `koanf:"key_prefix"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
}

// NATSConfig configures state-change forwarding. An empty URL disables it.
type NATSConfig struct {
	URL           string `koanf:"url"`
	SubjectPrefix string `koanf:"subject_prefix"`
}

// Manager handles configuration loading and parsing.
type Manager struct {
	k           *koanf.Koanf
	serviceName string
	configPaths []string
}

// NewManager creates a new configuration manager.
func NewManager(serviceName string) *Manager {
	return &Manager{
		k:           koanf.New("."),
		serviceName: serviceName,
		configPaths: getDefaultConfigPaths(serviceName),
	}
}

// WithPaths replaces the config file search list.
func (m *Manager) WithPaths(paths ...string) *Manager {
	m.configPaths = paths
	return m
}

// LoadConfig loads configuration from all sources.
func (m *Manager) LoadConfig(cfg Config) error {
	// 1. Load defaults from the struct
	if err := m.loadDefaults(cfg); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load from config files (in order of precedence)
	for _, path := range m.configPaths {
		if err := m.loadFromFile(path); err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	// 3. Load from environment variables
	if err := m.loadFromEnv(); err != nil {
		return fmt.Errorf("failed to load from environment: %w", err)
	}

	// 4. Unmarshal into the config struct
	if err := m.k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate the configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

func (m *Manager) loadDefaults(cfg Config) error {
	return m.k.Load(structs.Provider(cfg, "koanf"), nil)
}

func (m *Manager) loadFromFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	return m.k.Load(file.Provider(path), parser)
}

// loadFromEnv maps MARQUEE_CATALOG_API_KEY to catalog.api_key. A double
// underscore separates nesting levels; a single one stays inside the key.
func (m *Manager) loadFromEnv() error {
	prefix := strings.ToUpper(m.serviceName) + "_"

	return m.k.Load(env.Provider(prefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, prefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
}

func getDefaultConfigPaths(serviceName string) []string {
	paths := []string{
		"config.yaml",
		"config.json",
		fmt.Sprintf("%s.yaml", serviceName),
		fmt.Sprintf("%s.json", serviceName),

		"configs/config.yaml",
		"configs/config.json",
		fmt.Sprintf("configs/%s.yaml", serviceName),
		fmt.Sprintf("configs/%s.json", serviceName),

		fmt.Sprintf("configs/%s.%s.yaml", serviceName, getEnvironment()),
		fmt.Sprintf("configs/%s.%s.json", serviceName, getEnvironment()),
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		paths = append([]string{configPath}, paths...)
	}

	return paths
}

func getEnvironment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "dev"
}

// Validate validates the explorer configuration.
func (c *ExplorerConfig) Validate() error {
	if c.Service.Name == "" {
		return errors.New("service name is required")
	}
	if c.Catalog.BaseURL == "" {
		return errors.New("catalog base url is required")
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("invalid catalog page size: %d", c.Catalog.PageSize)
	}
	if c.Catalog.Timeout <= 0 {
		return errors.New("catalog timeout must be positive")
	}

	switch c.Reviews.Driver {
	case "sqlite":
		if c.Reviews.Path == "" {
			return errors.New("reviews path is required for the sqlite driver")
		}
	case "postgres":
		if c.Reviews.Database.Host == "" {
			return errors.New("reviews database host is required")
		}
		if c.Reviews.Database.Port <= 0 || c.Reviews.Database.Port > 65535 {
			return fmt.Errorf("invalid reviews database port: %d", c.Reviews.Database.Port)
		}
	default:
		return fmt.Errorf("unsupported reviews driver: %q", c.Reviews.Driver)
	}

	switch c.Preferences.Driver {
	case "bolt":
		if c.Preferences.Path == "" {
			return errors.New("preferences path is required for the bolt driver")
		}
	case "redis":
		if c.Preferences.Redis.Addr == "" {
			return errors.New("preferences redis addr is required")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported preferences driver: %q", c.Preferences.Driver)
	}

	return nil
}

// GetDefaults returns default configuration values.
func GetDefaults() *ExplorerConfig {
	return &ExplorerConfig{
		Service: ServiceConfig{
			Name:        ServiceName,
			Environment: "dev",
		},
		Logger: LoggerConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
		},
		Catalog: CatalogConfig{
			BaseURL:  DefaultCatalogURL,
			Host:     DefaultCatalogHost,
			PageSize: DefaultPageSize,
			Timeout:  DefaultCatalogTimeout,
			CacheTTL: DefaultCatalogCacheTTL,
		},
		Reviews: ReviewsConfig{
			Driver: "sqlite",
			Path:   "reviews.db",
			Database: DatabaseConfig{
				Host:            "localhost",
				Port:            DefaultPostgresPort,
				User:            "marquee",
				Password:        "marquee_dev",
				Database:        "marquee_dev",
				SSLMode:         "disable",
				MaxConnections:  DefaultMaxConnections,
				MinConnections:  DefaultMinConnections,
				MaxConnLifetime: time.Hour,
				MaxConnIdleTime: DefaultMaxConnIdleTime,
			},
		},
		Preferences: PreferencesConfig{
			Driver: "bolt",
			Path:   DefaultPreferencesPath,
			Redis: RedisConfig{
				Addr:        fmt.Sprintf("localhost:%d", DefaultRedisPort),
				KeyPrefix:   DefaultRedisKeyPrefix,
				DialTimeout: DefaultDialTimeout,
			},
		},
		NATS: NATSConfig{
			SubjectPrefix: DefaultSubjectPrefix,
		},
	}
}
