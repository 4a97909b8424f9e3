package reviews

import (
	"github.com/narwhalmedia/marquee/internal/state"
	"github.com/narwhalmedia/marquee/pkg/models"
)

// Action is the closed set of reviews actions.
type Action interface {
	state.Action
	reviewsAction()
}

// FetchPending starts a list request for MovieID.
type FetchPending struct {
	MovieID    string
	Generation uint64
}

// FetchFulfilled carries the list returned by the review store.
type FetchFulfilled struct {
	MovieID    string
	Generation uint64
	Reviews    []models.Review
}

// FetchRejected carries a failed list request.
type FetchRejected struct {
	MovieID    string
	Generation uint64
	Reason     error
}

// FetchDiscarded settles a fetch whose response was dropped as stale while no
// newer fetch is in flight.
type FetchDiscarded struct {
	MovieID    string
	Generation uint64
}

// AddPending starts a review submission.
type AddPending struct {
	MovieID string
}

// AddFulfilled carries the review created by the store.
type AddFulfilled struct {
	Review models.Review
}

// AddRejected carries a failed submission.
type AddRejected struct {
	MovieID string
	Reason  error
}

// Cleared empties the review list on movie-context exit.
type Cleared struct{}

// ErrorCleared resets the error message.
type ErrorCleared struct{}

func (FetchPending) Name() string   { return "reviews/fetchReviews" }
func (FetchFulfilled) Name() string { return "reviews/fetchReviews" }
func (FetchRejected) Name() string  { return "reviews/fetchReviews" }
func (FetchDiscarded) Name() string { return "reviews/fetchReviews" }
func (AddPending) Name() string     { return "reviews/addReview" }
func (AddFulfilled) Name() string   { return "reviews/addReview" }
func (AddRejected) Name() string    { return "reviews/addReview" }
func (Cleared) Name() string        { return "reviews/clearReviews" }
func (ErrorCleared) Name() string   { return "reviews/clearError" }

func (FetchPending) Phase() state.Phase   { return state.Pending }
func (FetchFulfilled) Phase() state.Phase { return state.Fulfilled }
func (FetchRejected) Phase() state.Phase  { return state.Rejected }
func (FetchDiscarded) Phase() state.Phase { return state.Fulfilled }
func (AddPending) Phase() state.Phase     { return state.Pending }
func (AddFulfilled) Phase() state.Phase   { return state.Fulfilled }
func (AddRejected) Phase() state.Phase    { return state.Rejected }
func (Cleared) Phase() state.Phase        { return state.Fulfilled }
func (ErrorCleared) Phase() state.Phase   { return state.Fulfilled }

func (FetchPending) reviewsAction()   {}
func (FetchFulfilled) reviewsAction() {}
func (FetchRejected) reviewsAction()  {}
func (FetchDiscarded) reviewsAction() {}
func (AddPending) reviewsAction()     {}
func (AddFulfilled) reviewsAction()   {}
func (AddRejected) reviewsAction()    {}
func (Cleared) reviewsAction()        {}
func (ErrorCleared) reviewsAction()   {}
