// Package watchlist keeps the user's saved movies. It is purely local and
// has no failure modes.
package watchlist

import (
	"fmt"
	"sync"

	"github.com/narwhalmedia/marquee/internal/state"
	"github.com/narwhalmedia/marquee/pkg/models"
)

// SliceName identifies the slice to listeners.
const SliceName = "watchlist"

// Action is the closed set of watchlist actions.
type Action interface {
	state.Action
	watchlistAction()
}

// Added saves a movie.
type Added struct {
	Movie models.Movie
}

// Removed drops a movie by id.
type Removed struct {
	ID int
}

func (Added) Name() string   { return "watchlist/addToWatchlist" }
func (Removed) Name() string { return "watchlist/removeFromWatchlist" }

func (Added) Phase() state.Phase   { return state.Fulfilled }
func (Removed) Phase() state.Phase { return state.Fulfilled }

func (Added) watchlistAction()   {}
func (Removed) watchlistAction() {}

// State holds saved movies in insertion order, unique by id.
type State struct {
	Movies []models.Movie `json:"movies"`
}

// InitialState is the empty watchlist.
func InitialState() State {
	return State{Movies: []models.Movie{}}
}

// Contains reports whether a movie with id is saved.
func (s State) Contains(id int) bool {
	return s.index(id) >= 0
}

func (s State) index(id int) int {
	for i, m := range s.Movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Reduce applies a to s. Adding a saved movie or removing an unsaved one
// leaves s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Added:
		if s.Contains(a.Movie.ID) {
			return s
		}
		movies := make([]models.Movie, 0, len(s.Movies)+1)
		s.Movies = append(append(movies, s.Movies...), a.Movie)
	case Removed:
		i := s.index(a.ID)
		if i < 0 {
			return s
		}
		movies := make([]models.Movie, 0, len(s.Movies)-1)
		movies = append(movies, s.Movies[:i]...)
		s.Movies = append(movies, s.Movies[i+1:]...)
	default:
		panic(fmt.Sprintf("watchlist: unhandled action %T", a))
	}
	return s
}

// Slice owns the watchlist state.
type Slice struct {
	mu        sync.RWMutex
	state     State
	listeners []state.Listener
}

// New creates an empty watchlist.
func New() *Slice {
	return &Slice{state: InitialState()}
}

// OnAction registers a listener for applied actions.
func (s *Slice) OnAction(l state.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot returns a copy of the current state.
func (s *Slice) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Movies: append([]models.Movie{}, s.state.Movies...)}
}

// Contains reports whether a movie with id is saved.
func (s *Slice) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Contains(id)
}

// Add saves movie unless a movie with the same id is already saved.
func (s *Slice) Add(movie models.Movie) State {
	return s.dispatch(Added{Movie: movie})
}

// Remove drops the movie with id if saved.
func (s *Slice) Remove(id int) State {
	return s.dispatch(Removed{ID: id})
}

// Toggle saves movie, or removes it when already saved.
func (s *Slice) Toggle(movie models.Movie) State {
	s.mu.Lock()
	var a Action = Added{Movie: movie}
	if s.state.Contains(movie.ID) {
		a = Removed{ID: movie.ID}
	}
	return s.applyLocked(a)
}

func (s *Slice) dispatch(a Action) State {
	s.mu.Lock()
	return s.applyLocked(a)
}

func (s *Slice) applyLocked(a Action) State {
	s.state = Reduce(s.state, a)
	next := State{Movies: append([]models.Movie{}, s.state.Movies...)}
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(SliceName, a)
	}
	return next
}
