package main

import (
	"context"
	"fmt"
	"time"

	"github.com/narwhalmedia/marquee/internal/infrastructure/catalog"
	natsevents "github.com/narwhalmedia/marquee/internal/infrastructure/events/nats"
	"github.com/narwhalmedia/marquee/internal/infrastructure/preferences"
	"github.com/narwhalmedia/marquee/internal/infrastructure/reviewstore"
	"github.com/narwhalmedia/marquee/internal/store"
	"github.com/narwhalmedia/marquee/pkg/config"
	"github.com/narwhalmedia/marquee/pkg/database"
	"github.com/narwhalmedia/marquee/pkg/events"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
	"github.com/narwhalmedia/marquee/pkg/utils"
)

// app holds the wired store and everything that must be released on exit.
type app struct {
	store    *store.Store
	log      interfaces.Logger
	cleanups []func()
}

func newApp(ctx context.Context, cfg *config.ExplorerConfig, log interfaces.Logger, staleGuard bool) (*app, error) {
	a := &app{log: log}

	db, err := database.Open(cfg.Reviews.ToDatabaseConfig(), log)
	if err != nil {
		return nil, err
	}
	a.cleanups = append(a.cleanups, func() { _ = database.Close(db) })

	reviews := reviewstore.New(db, log)
	if err := reviews.Migrate(); err != nil {
		a.close()
		return nil, fmt.Errorf("failed to migrate review store: %w", err)
	}

	prefs, err := preferences.Open(ctx, cfg.Preferences)
	if err != nil {
		log.Warn("Preference store unavailable, using memory",
			interfaces.String("driver", cfg.Preferences.Driver),
			interfaces.Error(err))
		prefs = preferences.NewMemory()
	}
	a.cleanups = append(a.cleanups, func() { _ = prefs.Close() })

	cache := utils.NewInMemoryCache(time.Minute)
	a.cleanups = append(a.cleanups, cache.Close)

	client := catalog.NewClient(catalog.Config{
		BaseURL:  cfg.Catalog.BaseURL,
		APIKey:   cfg.Catalog.APIKey,
		Host:     cfg.Catalog.Host,
		PageSize: cfg.Catalog.PageSize,
		Timeout:  cfg.Catalog.Timeout,
		CacheTTL: cfg.Catalog.CacheTTL,
	}, cache, log)

	bus := events.NewInMemoryEventBus(log)

	a.store = store.New(store.Dependencies{
		Catalog:     client,
		Reviews:     reviews,
		Preferences: prefs,
		EventBus:    bus,
		Logger:      log,
	}, store.Options{
		PageSize:   cfg.Catalog.PageSize,
		StaleGuard: staleGuard,
	})
	a.cleanups = append(a.cleanups, func() { _ = a.store.Close() })

	if cfg.NATS.URL != "" {
		nc, cleanup, err := natsevents.NewClient(natsevents.Config{URL: cfg.NATS.URL}, log)
		if err != nil {
			log.Warn("State forwarding disabled", interfaces.Error(err))
		} else {
			a.cleanups = append(a.cleanups, cleanup)
			if err := natsevents.NewForwarder(nc, cfg.NATS.SubjectPrefix, log).Attach(bus); err != nil {
				log.Warn("Failed to attach state forwarder", interfaces.Error(err))
			}
		}
	}

	a.store.Initialize(ctx)
	return a, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
}
