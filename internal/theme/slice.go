// Package theme keeps the colour scheme preference and mirrors it to a
// key-value store. Storage failures never block or revert a change.
package theme

import (
	"context"
	"sync"

	"github.com/narwhalmedia/marquee/internal/state"
	"github.com/narwhalmedia/marquee/pkg/errors"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
	"github.com/narwhalmedia/marquee/pkg/models"
)

const (
	// SliceName identifies the slice to listeners.
	SliceName = "theme"

	// StorageKey is the single persisted key.
	StorageKey = "movieExplorerTheme"
)

// Slice owns the theme state.
type Slice struct {
	mu        sync.RWMutex
	state     State
	store     interfaces.KeyValueStore
	logger    interfaces.Logger
	listeners []state.Listener

	// serializes writes so the stored value ends up matching memory
	persistMu sync.Mutex
}

// New creates a theme slice backed by store.
func New(store interfaces.KeyValueStore, logger interfaces.Logger) *Slice {
	return &Slice{
		state:  InitialState(),
		store:  store,
		logger: logger.WithFields(interfaces.String("slice", SliceName)),
	}
}

// OnAction registers a listener for applied actions.
func (s *Slice) OnAction(l state.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot returns the current state.
func (s *Slice) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Initialize restores the persisted theme. Any read failure, absence or
// unknown value falls back to the default theme.
func (s *Slice) Initialize(ctx context.Context) models.Theme {
	theme := s.load(ctx)
	return s.dispatch(Restored{Theme: theme}).Theme
}

// Toggle flips the theme in memory, then persists it.
func (s *Slice) Toggle(ctx context.Context) models.Theme {
	next := s.dispatch(Toggled{})
	s.persist(ctx)
	return next.Theme
}

// SetTheme applies value explicitly, then persists it. Unknown values are
// rejected and leave the state untouched.
func (s *Slice) SetTheme(ctx context.Context, value string) error {
	theme, err := models.ParseTheme(value)
	if err != nil {
		return errors.BadRequest(err.Error())
	}
	s.dispatch(Set{Theme: theme})
	s.persist(ctx)
	return nil
}

func (s *Slice) load(ctx context.Context) models.Theme {
	raw, ok, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn("Failed to read theme", interfaces.Error(err))
		return models.DefaultTheme
	}
	if !ok {
		return models.DefaultTheme
	}

	theme, err := models.ParseTheme(raw)
	if err != nil {
		s.logger.Warn("Ignoring stored theme", interfaces.String("value", raw))
		return models.DefaultTheme
	}
	return theme
}

func (s *Slice) persist(ctx context.Context) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	theme := s.Snapshot().Theme
	if err := s.store.Set(ctx, StorageKey, string(theme)); err != nil {
		s.logger.Error("Failed to save theme",
			interfaces.String("theme", string(theme)),
			interfaces.Error(err))
	}
}

func (s *Slice) dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(SliceName, a)
	}
	return next
}
