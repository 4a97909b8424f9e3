package movies

import (
	"github.com/narwhalmedia/marquee/internal/state"
	"github.com/narwhalmedia/marquee/pkg/models"
)

// Action is the closed set of movies actions.
type Action interface {
	state.Action
	moviesAction()
}

// ListPending starts a genre search.
type ListPending struct {
	Genre      string
	Page       int
	Generation uint64
}

// ListFulfilled carries one page of search results.
type ListFulfilled struct {
	Genre      string
	Page       int
	Generation uint64
	Movies     []models.Movie
	TotalPages int
}

// ListRejected carries a failed genre search.
type ListRejected struct {
	Genre      string
	Page       int
	Generation uint64
	Reason     error
}

// GenresPending starts a genre list request. It does not touch the loading flag.
type GenresPending struct{}

// GenresFulfilled carries the catalog's genres.
type GenresFulfilled struct {
	Genres []models.Genre
}

// GenresRejected leaves the genre list empty.
type GenresRejected struct {
	Reason error
}

// DetailPending starts a movie detail request.
type DetailPending struct {
	ID         string
	Generation uint64
}

// DetailFulfilled carries the requested movie.
type DetailFulfilled struct {
	ID         string
	Generation uint64
	Movie      models.Movie
}

// DetailNotFound records that the catalog has no such movie. It is a valid
// outcome, not an error.
type DetailNotFound struct {
	ID         string
	Generation uint64
}

// DetailRejected carries a failed detail request.
type DetailRejected struct {
	ID         string
	Generation uint64
	Reason     error
}

// GenreSet selects a genre. An empty name means all genres.
type GenreSet struct {
	Genre string
}

// SearchQuerySet updates the title filter.
type SearchQuerySet struct {
	Query string
}

// PageSet selects a page.
type PageSet struct {
	Page int
}

func (ListPending) Name() string     { return "movies/fetchByGenre" }
func (ListFulfilled) Name() string   { return "movies/fetchByGenre" }
func (ListRejected) Name() string    { return "movies/fetchByGenre" }
func (GenresPending) Name() string   { return "movies/fetchGenres" }
func (GenresFulfilled) Name() string { return "movies/fetchGenres" }
func (GenresRejected) Name() string  { return "movies/fetchGenres" }
func (DetailPending) Name() string   { return "movies/fetchMovieDetail" }
func (DetailFulfilled) Name() string { return "movies/fetchMovieDetail" }
func (DetailNotFound) Name() string  { return "movies/fetchMovieDetail" }
func (DetailRejected) Name() string  { return "movies/fetchMovieDetail" }
func (GenreSet) Name() string        { return "movies/setGenre" }
func (SearchQuerySet) Name() string  { return "movies/setSearchQuery" }
func (PageSet) Name() string         { return "movies/setPage" }

func (ListPending) Phase() state.Phase     { return state.Pending }
func (ListFulfilled) Phase() state.Phase   { return state.Fulfilled }
func (ListRejected) Phase() state.Phase    { return state.Rejected }
func (GenresPending) Phase() state.Phase   { return state.Pending }
func (GenresFulfilled) Phase() state.Phase { return state.Fulfilled }
func (GenresRejected) Phase() state.Phase  { return state.Rejected }
func (DetailPending) Phase() state.Phase   { return state.Pending }
func (DetailFulfilled) Phase() state.Phase { return state.Fulfilled }
func (DetailNotFound) Phase() state.Phase  { return state.Fulfilled }
func (DetailRejected) Phase() state.Phase  { return state.Rejected }
func (GenreSet) Phase() state.Phase        { return state.Fulfilled }
func (SearchQuerySet) Phase() state.Phase  { return state.Fulfilled }
func (PageSet) Phase() state.Phase         { return state.Fulfilled }

func (ListPending) moviesAction()     {}
func (ListFulfilled) moviesAction()   {}
func (ListRejected) moviesAction()    {}
func (GenresPending) moviesAction()   {}
func (GenresFulfilled) moviesAction() {}
func (GenresRejected) moviesAction()  {}
func (DetailPending) moviesAction()   {}
func (DetailFulfilled) moviesAction() {}
func (DetailNotFound) moviesAction()  {}
func (DetailRejected) moviesAction()  {}
func (GenreSet) moviesAction()        {}
func (SearchQuerySet) moviesAction()  {}
func (PageSet) moviesAction()         {}
