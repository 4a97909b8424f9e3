package preferences

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/marquee/pkg/config"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
)

// Store is a KeyValueStore that holds resources.
type Store interface {
	interfaces.KeyValueStore
	Close() error
}

// Open builds the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.PreferencesConfig) (Store, error) {
	switch cfg.Driver {
	case "bolt":
		return OpenBolt(cfg.Path)
	case "redis":
		return NewRedis(ctx, RedisConfig{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			KeyPrefix:   cfg.Redis.KeyPrefix,
			DialTimeout: cfg.Redis.DialTimeout,
		})
	case "memory":
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unsupported preferences driver: %q", cfg.Driver)
}
