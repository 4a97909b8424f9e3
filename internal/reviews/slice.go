// Package reviews keeps the reviews of the movie currently being viewed and
// submits new ones through a remote review store.
package reviews

import (
	"context"
	"sync"

	"github.com/narwhalmedia/marquee/internal/state"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
	"github.com/narwhalmedia/marquee/pkg/models"
)

// SliceName identifies the slice to listeners.
const SliceName = "reviews"

// Store is the remote review store.
type Store interface {
	Create(ctx context.Context, movieID string, input models.ReviewInput) (*models.Review, error)
	List(ctx context.Context, movieID string) ([]models.Review, error)
}

// Option configures a Slice.
type Option func(*Slice)

// WithStaleGuard discards fetch results superseded by a newer fetch or by
// ClearReviews. Without it the last response to arrive wins.
func WithStaleGuard() Option {
	return func(s *Slice) {
		s.staleGuard = true
	}
}

// Slice owns the reviews state.
type Slice struct {
	mu        sync.RWMutex
	state     State
	store     Store
	logger    interfaces.Logger
	listeners []state.Listener

	staleGuard  bool
	generation  state.Generation // bumped by every fetch and clear
	latestFetch uint64
}

// New creates a reviews slice backed by store.
func New(store Store, logger interfaces.Logger, opts ...Option) *Slice {
	s := &Slice{
		state:  InitialState(),
		store:  store,
		logger: logger.WithFields(interfaces.String("slice", SliceName)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
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
	return s.snapshotLocked()
}

// FetchReviews replaces the review list with the store's list for movieID.
// Failures are recorded in the state, never returned.
func (s *Slice) FetchReviews(ctx context.Context, movieID string) State {
	tag := s.beginFetch(movieID)

	result := state.Capture(s.store.List(ctx, movieID))

	var outcome Action
	if reviews, ok := result.Value(); ok {
		outcome = FetchFulfilled{MovieID: movieID, Generation: tag, Reviews: reviews}
	} else {
		s.logger.Error("Failed to fetch reviews",
			interfaces.String("movie_id", movieID),
			interfaces.Error(result.Err()))
		outcome = FetchRejected{MovieID: movieID, Generation: tag, Reason: result.Err()}
	}
	return s.settleFetch(movieID, tag, outcome)
}

// AddReview submits input for movieID and prepends the created review. The
// result tells the caller whether to clear its draft; the slice keeps none.
func (s *Slice) AddReview(ctx context.Context, movieID string, input models.ReviewInput) state.Result[models.Review] {
	s.dispatch(AddPending{MovieID: movieID})

	created, err := s.store.Create(ctx, movieID, input)
	if err == nil && created == nil {
		err = errMissingReview
	}
	if err != nil {
		s.logger.Error("Failed to add review",
			interfaces.String("movie_id", movieID),
			interfaces.Error(err))
		s.dispatch(AddRejected{MovieID: movieID, Reason: err})
		return state.Fail[models.Review](err)
	}

	s.dispatch(AddFulfilled{Review: *created})
	return state.Ok(*created)
}

// ClearReviews empties the list. With the stale guard on, in-flight fetches
// are invalidated too.
func (s *Slice) ClearReviews() {
	s.mu.Lock()
	s.generation.Next()
	s.applyLocked(Cleared{})
}

// ClearError resets the error message.
func (s *Slice) ClearError() {
	s.dispatch(ErrorCleared{})
}

func (s *Slice) beginFetch(movieID string) uint64 {
	s.mu.Lock()
	tag := s.generation.Next()
	s.latestFetch = tag
	s.applyLocked(FetchPending{MovieID: movieID, Generation: tag})
	return tag
}

// settleFetch applies outcome unless the stale guard rejects it. The check
// and the reduction happen under one lock so a concurrent clear cannot slip
// between them.
func (s *Slice) settleFetch(movieID string, tag uint64, outcome Action) State {
	s.mu.Lock()
	if s.staleGuard && !s.generation.IsCurrent(tag) {
		s.logger.Debug("Discarding stale reviews response",
			interfaces.String("movie_id", movieID),
			interfaces.Any("generation", tag))
		if tag != s.latestFetch {
			next := s.snapshotLocked()
			s.mu.Unlock()
			return next
		}
		outcome = FetchDiscarded{MovieID: movieID, Generation: tag}
	}
	return s.applyLocked(outcome)
}

func (s *Slice) dispatch(a Action) State {
	s.mu.Lock()
	return s.applyLocked(a)
}

// applyLocked reduces a, releases the lock and notifies listeners.
func (s *Slice) applyLocked(a Action) State {
	s.state = Reduce(s.state, a)
	next := s.snapshotLocked()
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(SliceName, a)
	}
	return next
}

func (s *Slice) snapshotLocked() State {
	out := s.state
	out.Reviews = append([]models.Review(nil), s.state.Reviews...)
	if out.Reviews == nil {
		out.Reviews = []models.Review{}
	}
	return out
}
