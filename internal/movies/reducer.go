package movies

import (
	"fmt"
	"strings"

	"github.com/narwhalmedia/marquee/pkg/models"
)

// Messages shown to the user when a remote call fails.
const (
	ErrListFailed   = "Failed to fetch movies"
	ErrDetailFailed = "Failed to fetch movie details"
)

// DetailStatus distinguishes the terminal outcomes of a detail request.
type DetailStatus int

const (
	DetailIdle DetailStatus = iota
	DetailLoading
	DetailLoaded
	DetailMissing
	DetailFailed
)

func (d DetailStatus) String() string {
	switch d {
	case DetailIdle:
		return "idle"
	case DetailLoading:
		return "loading"
	case DetailLoaded:
		return "loaded"
	case DetailMissing:
		return "not_found"
	case DetailFailed:
		return "failed"
	}
	return fmt.Sprintf("detail(%d)", int(d))
}

// MarshalText encodes the status by name.
func (d DetailStatus) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// State is the movies slice state. An empty Error means no error.
type State struct {
	Movies       []models.Movie `json:"movies"`
	Genres       []models.Genre `json:"genres"`
	SearchQuery  string         `json:"searchQuery"`
	CurrentGenre string         `json:"currentGenre"`
	CurrentPage  int            `json:"currentPage"`
	TotalPages   int            `json:"totalPages"`
	IsLoading    bool           `json:"isLoading"`
	Error        string         `json:"error,omitempty"`
	MovieDetail  *models.Movie  `json:"movieDetail"`
	DetailStatus DetailStatus   `json:"detailStatus"`
}

// InitialState is the empty movies state.
func InitialState() State {
	return State{
		Movies:      []models.Movie{},
		Genres:      []models.Genre{},
		CurrentPage: 1,
		TotalPages:  1,
	}
}

// NotFound reports whether the last detail request resolved with no movie.
func (s State) NotFound() bool {
	return s.DetailStatus == DetailMissing
}

// Visible returns the loaded movies whose title contains SearchQuery,
// ignoring case. An empty query matches everything.
func (s State) Visible() []models.Movie {
	query := strings.ToLower(strings.TrimSpace(s.SearchQuery))
	out := make([]models.Movie, 0, len(s.Movies))
	for _, m := range s.Movies {
		if query == "" || strings.Contains(strings.ToLower(m.Title), query) {
			out = append(out, m)
		}
	}
	return out
}

// TotalPages converts a result count into a page count of at least one.
func TotalPages(totalEntries, pageSize int) int {
	if pageSize <= 0 || totalEntries <= 0 {
		return 1
	}
	return (totalEntries + pageSize - 1) / pageSize
}

// Reduce applies a to s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ListPending:
		s.IsLoading = true
		s.Error = ""
	case ListFulfilled:
		s.Movies = append([]models.Movie{}, a.Movies...)
		s.TotalPages = a.TotalPages
		s.CurrentPage = a.Page
		s.IsLoading = false
	case ListRejected:
		s.IsLoading = false
		s.Error = ErrListFailed
	case GenresPending:
	case GenresFulfilled:
		s.Genres = append([]models.Genre{}, a.Genres...)
	case GenresRejected:
		s.Genres = []models.Genre{}
	case DetailPending:
		s.IsLoading = true
		s.Error = ""
		s.DetailStatus = DetailLoading
	case DetailFulfilled:
		movie := a.Movie
		s.MovieDetail = &movie
		s.IsLoading = false
		s.DetailStatus = DetailLoaded
	case DetailNotFound:
		s.MovieDetail = nil
		s.IsLoading = false
		s.Error = ""
		s.DetailStatus = DetailMissing
	case DetailRejected:
		s.MovieDetail = nil
		s.IsLoading = false
		s.Error = ErrDetailFailed
		s.DetailStatus = DetailFailed
	case GenreSet:
		s.CurrentGenre = a.Genre
	case SearchQuerySet:
		s.SearchQuery = a.Query
	case PageSet:
		s.CurrentPage = a.Page
	default:
		panic(fmt.Sprintf("movies: unhandled action %T", a))
	}
	return s
}
