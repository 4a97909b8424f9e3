// Package movies keeps the browsable movie list, the genre list and the
// detail of the movie being viewed, all fetched from a remote catalog.
package movies

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
	SliceName = "movies"

	// DefaultPageSize is the number of movies the catalog returns per page.
	DefaultPageSize = 10
)

// Catalog is the remote movie catalog. GetByID reports an unknown movie with
// an errors.NotFound error.
type Catalog interface {
	SearchByGenre(ctx context.Context, genre string, page int) (*models.MoviePage, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id string) (*models.Movie, error)
}

// Option configures a Slice.
type Option func(*Slice)

// WithStaleGuard discards list and detail results superseded by a newer
// request of the same kind.
func WithStaleGuard() Option {
	return func(s *Slice) {
		s.staleGuard = true
	}
}

// WithPageSize sets the page size used to compute TotalPages.
func WithPageSize(n int) Option {
	return func(s *Slice) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// Slice owns the movies state.
type Slice struct {
	mu        sync.RWMutex
	state     State
	catalog   Catalog
	logger    interfaces.Logger
	listeners []state.Listener

	pageSize   int
	staleGuard bool
	listGen    state.Generation
	detailGen  state.Generation
}

// New creates a movies slice backed by catalog.
func New(catalog Catalog, logger interfaces.Logger, opts ...Option) *Slice {
	s := &Slice{
		state:    InitialState(),
		catalog:  catalog,
		logger:   logger.WithFields(interfaces.String("slice", SliceName)),
		pageSize: DefaultPageSize,
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

// FetchByGenre loads one page of movies in genre. On failure the previously
// loaded movies stay in place.
func (s *Slice) FetchByGenre(ctx context.Context, genre string, page int) State {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	tag := s.listGen.Next()
	s.applyLocked(ListPending{Genre: genre, Page: page, Generation: tag})

	result := state.Capture(s.catalog.SearchByGenre(ctx, genre, page))

	var outcome Action
	if res, ok := result.Value(); ok && res != nil {
		outcome = ListFulfilled{
			Genre:      genre,
			Page:       page,
			Generation: tag,
			Movies:     res.Results,
			TotalPages: TotalPages(res.TotalEntries, s.pageSize),
		}
	} else {
		err := result.Err()
		if err == nil {
			err = errEmptyPage
		}
		s.logger.Error("Failed to fetch movies",
			interfaces.String("genre", genre),
			interfaces.Int("page", page),
			interfaces.Error(err))
		outcome = ListRejected{Genre: genre, Page: page, Generation: tag, Reason: err}
	}

	s.mu.Lock()
	if s.staleGuard && !s.listGen.IsCurrent(tag) {
		next := s.snapshotLocked()
		s.mu.Unlock()
		s.logger.Debug("Discarding stale movies response", interfaces.String("genre", genre))
		return next
	}
	return s.applyLocked(outcome)
}

// FetchGenres loads the genre list. A failure leaves it empty and is only
// logged; browsing carries on without genres.
func (s *Slice) FetchGenres(ctx context.Context) State {
	s.dispatch(GenresPending{})

	genres, err := s.catalog.ListGenres(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch genres", interfaces.Error(err))
		return s.dispatch(GenresRejected{Reason: err})
	}
	return s.dispatch(GenresFulfilled{Genres: genres})
}

// FetchMovieDetail loads a single movie. A missing movie is recorded as
// not-found, separately from a failed request.
func (s *Slice) FetchMovieDetail(ctx context.Context, id string) State {
	s.mu.Lock()
	tag := s.detailGen.Next()
	s.applyLocked(DetailPending{ID: id, Generation: tag})

	movie, err := s.catalog.GetByID(ctx, id)

	var outcome Action
	switch {
	case errors.IsNotFound(err), err == nil && movie == nil:
		outcome = DetailNotFound{ID: id, Generation: tag}
	case err != nil:
		s.logger.Error("Failed to fetch movie details",
			interfaces.String("movie_id", id),
			interfaces.Error(err))
		outcome = DetailRejected{ID: id, Generation: tag, Reason: err}
	default:
		outcome = DetailFulfilled{ID: id, Generation: tag, Movie: *movie}
	}

	s.mu.Lock()
	if s.staleGuard && !s.detailGen.IsCurrent(tag) {
		next := s.snapshotLocked()
		s.mu.Unlock()
		s.logger.Debug("Discarding stale movie detail", interfaces.String("movie_id", id))
		return next
	}
	return s.applyLocked(outcome)
}

// SetGenre selects a genre; an empty name means all genres.
func (s *Slice) SetGenre(name string) State {
	return s.dispatch(GenreSet{Genre: name})
}

// SetSearchQuery updates the title filter applied by State.Visible.
func (s *Slice) SetSearchQuery(query string) State {
	return s.dispatch(SearchQuerySet{Query: query})
}

// SetPage selects a page, clamped to at least one.
func (s *Slice) SetPage(page int) State {
	if page < 1 {
		page = 1
	}
	return s.dispatch(PageSet{Page: page})
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
	out.Movies = append([]models.Movie{}, s.state.Movies...)
	out.Genres = append([]models.Genre{}, s.state.Genres...)
	if s.state.MovieDetail != nil {
		detail := *s.state.MovieDetail
		out.MovieDetail = &detail
	}
	return out
}
