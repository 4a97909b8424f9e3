package reviews

import (
	"fmt"

	"github.com/narwhalmedia/marquee/pkg/models"
)

// Messages shown to the user when a remote call fails.
const (
	ErrFetchFailed = "Failed to fetch reviews"
	ErrAddFailed   = "Failed to add review"
)

// State is the reviews slice state. Reviews are ordered newest first and an
// empty Error means no error.
type State struct {
	Reviews      []models.Review `json:"reviews"`
	IsLoading    bool            `json:"isLoading"`
	IsSubmitting bool            `json:"isSubmitting"`
	Error        string          `json:"error,omitempty"`
}

// InitialState is the empty reviews state.
func InitialState() State {
	return State{Reviews: []models.Review{}}
}

// HasError reports whether the last remote call failed.
func (s State) HasError() bool {
	return s.Error != ""
}

// Reduce applies a to s. The returned state never shares its review slice
// with s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FetchPending:
		s.IsLoading = true
		s.Error = ""
	case FetchFulfilled:
		s.Reviews = append([]models.Review{}, a.Reviews...)
		s.IsLoading = false
	case FetchRejected:
		s.IsLoading = false
		s.Error = ErrFetchFailed
	case FetchDiscarded:
		s.IsLoading = false
	case AddPending:
		s.IsSubmitting = true
		s.Error = ""
	case AddFulfilled:
		reviews := make([]models.Review, 0, len(s.Reviews)+1)
		reviews = append(reviews, a.Review)
		s.Reviews = append(reviews, s.Reviews...)
		s.IsSubmitting = false
	case AddRejected:
		s.IsSubmitting = false
		s.Error = ErrAddFailed
	case Cleared:
		s.Reviews = []models.Review{}
	case ErrorCleared:
		s.Error = ""
	default:
		panic(fmt.Sprintf("reviews: unhandled action %T", a))
	}
	return s
}
