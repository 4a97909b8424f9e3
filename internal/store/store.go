// Package store composes the state slices into the explorer's state tree and
// drives the movie detail lifecycle.
package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/narwhalmedia/marquee/internal/movies"
	"github.com/narwhalmedia/marquee/internal/reviews"
	"github.com/narwhalmedia/marquee/internal/state"
	"github.com/narwhalmedia/marquee/internal/theme"
	"github.com/narwhalmedia/marquee/internal/watchlist"
	"github.com/narwhalmedia/marquee/pkg/events"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
)

// Dependencies are the collaborators the slices call.
type Dependencies struct {
	Catalog     movies.Catalog
	Reviews     reviews.Store
	Preferences interfaces.KeyValueStore
	EventBus    interfaces.EventBus
	Logger      interfaces.Logger
}

// Options tune slice behaviour.
type Options struct {
	PageSize   int
	StaleGuard bool
}

// RootState is a point-in-time copy of every slice.
type RootState struct {
	Movies    movies.State    `json:"movies"`
	Reviews   reviews.State   `json:"reviews"`
	Theme     theme.State     `json:"theme"`
	Watchlist watchlist.State `json:"watchlist"`
}

// Store owns one instance of each slice.
type Store struct {
	Movies    *movies.Slice
	Reviews   *reviews.Slice
	Theme     *theme.Slice
	Watchlist *watchlist.Slice

	bus    interfaces.EventBus
	logger interfaces.Logger
}

// New builds the slices from deps and publishes every applied action on the
// event bus.
func New(deps Dependencies, opts Options) *Store {
	log := deps.Logger
	bus := deps.EventBus
	if bus == nil {
		bus = events.NewInMemoryEventBus(log)
	}

	movieOpts := []movies.Option{movies.WithPageSize(opts.PageSize)}
	reviewOpts := []reviews.Option{}
	if opts.StaleGuard {
		movieOpts = append(movieOpts, movies.WithStaleGuard())
		reviewOpts = append(reviewOpts, reviews.WithStaleGuard())
	}

	s := &Store{
		Movies:    movies.New(deps.Catalog, log, movieOpts...),
		Reviews:   reviews.New(deps.Reviews, log, reviewOpts...),
		Theme:     theme.New(deps.Preferences, log),
		Watchlist: watchlist.New(),
		bus:       bus,
		logger:    log,
	}

	s.Movies.OnAction(s.publish)
	s.Reviews.OnAction(s.publish)
	s.Theme.OnAction(s.publish)
	s.Watchlist.OnAction(s.publish)

	return s
}

// Initialize restores persisted preferences.
func (s *Store) Initialize(ctx context.Context) {
	current := s.Theme.Initialize(ctx)
	s.logger.Debug("Store initialized", interfaces.String("theme", string(current)))
}

// OpenMovie enters a movie's detail context: stale reviews are cleared, then
// the detail and its reviews load concurrently. Failures land in the slices.
func (s *Store) OpenMovie(ctx context.Context, id string) RootState {
	s.Reviews.ClearReviews()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Movies.FetchMovieDetail(gctx, id)
		return nil
	})
	g.Go(func() error {
		s.Reviews.FetchReviews(gctx, id)
		return nil
	})
	_ = g.Wait()

	return s.Snapshot()
}

// CloseMovie leaves the detail context.
func (s *Store) CloseMovie() {
	s.Reviews.ClearReviews()
}

// Snapshot returns a copy of every slice.
func (s *Store) Snapshot() RootState {
	return RootState{
		Movies:    s.Movies.Snapshot(),
		Reviews:   s.Reviews.Snapshot(),
		Theme:     s.Theme.Snapshot(),
		Watchlist: s.Watchlist.Snapshot(),
	}
}

// Subscribe registers h for state-change events.
func (s *Store) Subscribe(h interfaces.EventHandler) error {
	return s.bus.Subscribe(events.TypeStateChanged, h)
}

// Close waits for pending event deliveries.
func (s *Store) Close() error {
	return s.bus.Stop()
}

func (s *Store) publish(slice string, a state.Action) {
	event := events.NewStateChanged(slice, a.Name(), a.Phase().String())
	if err := s.bus.Publish(context.Background(), event); err != nil {
		s.logger.Warn("Failed to publish state change",
			interfaces.String("slice", slice),
			interfaces.String("action", a.Name()),
			interfaces.Error(err))
	}
}
