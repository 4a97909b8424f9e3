package reviews_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/marquee/internal/reviews"
	"github.com/narwhalmedia/marquee/internal/state"
	pkgerrors "github.com/narwhalmedia/marquee/pkg/errors"
	"github.com/narwhalmedia/marquee/pkg/logger"
	"github.com/narwhalmedia/marquee/pkg/models"
	"github.com/narwhalmedia/marquee/test/testutil"
)

type ReviewsSliceTestSuite struct {
	suite.Suite
	store *testutil.MockReviewStore
	slice *reviews.Slice
	ctx   context.Context
	now   time.Time
}

func (s *ReviewsSliceTestSuite) SetupTest() {
	s.store = new(testutil.MockReviewStore)
	s.slice = reviews.New(s.store, logger.NewNoopLogger())
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ReviewsSliceTestSuite) TearDownTest() {
	s.store.AssertExpectations(s.T())
}

func (s *ReviewsSliceTestSuite) TestFetchReviews_Success() {
	// Arrange
	list := []models.Review{
		testutil.CreateTestReview("r2", "123", 5, s.now),
		testutil.CreateTestReview("r1", "123", 3, s.now.Add(-time.Hour)),
	}
	s.store.On("List", s.ctx, "123").Return(list, nil)

	// Act
	got := s.slice.FetchReviews(s.ctx, "123")

	// Assert
	s.Equal(list, got.Reviews)
	s.False(got.IsLoading)
	s.Empty(got.Error)
	s.Equal(got, s.slice.Snapshot())
}

func (s *ReviewsSliceTestSuite) TestFetchReviews_FailureKeepsPriorReviews() {
	// Arrange
	prior := []models.Review{testutil.CreateTestReview("r1", "123", 4, s.now)}
	s.store.On("List", s.ctx, "123").Return(prior, nil).Once()
	s.slice.FetchReviews(s.ctx, "123")
	s.store.On("List", s.ctx, "123").
		Return(nil, pkgerrors.RemoteRead("list reviews", errors.New("network down"))).Once()

	// Act
	got := s.slice.FetchReviews(s.ctx, "123")

	// Assert
	s.Equal(prior, got.Reviews)
	s.False(got.IsLoading)
	s.Equal(reviews.ErrFetchFailed, got.Error)
}

func (s *ReviewsSliceTestSuite) TestFetchReviews_LoadingWhileInFlight() {
	release := make(chan time.Time)
	s.store.On("List", mock.Anything, "123").WaitUntil(release).Return([]models.Review{}, nil)

	done := make(chan struct{})
	go func() {
		s.slice.FetchReviews(s.ctx, "123")
		close(done)
	}()

	s.Eventually(func() bool { return s.slice.Snapshot().IsLoading }, time.Second, time.Millisecond)
	close(release)
	<-done
	s.False(s.slice.Snapshot().IsLoading)
}

func (s *ReviewsSliceTestSuite) TestAddReview_SubmitSuccess() {
	// Arrange
	input := models.ReviewInput{Name: "John Doe", Rating: 4, Comment: "Great movie!"}
	created := &models.Review{
		ID: "r1", Name: "John Doe", Rating: 4, Comment: "Great movie!",
		MovieID: "123", CreatedAt: s.now,
	}
	s.store.On("Create", s.ctx, "123", input).Return(created, nil)

	var submitting []bool
	s.slice.OnAction(func(_ string, a state.Action) {
		submitting = append(submitting, s.slice.Snapshot().IsSubmitting)
	})

	// Act
	result := s.slice.AddReview(s.ctx, "123", input)

	// Assert
	s.True(result.IsOk())
	got := s.slice.Snapshot()
	s.Equal([]models.Review{*created}, got.Reviews)
	s.False(got.IsSubmitting)
	s.Empty(got.Error)
	s.Equal([]bool{true, false}, submitting)
}

func (s *ReviewsSliceTestSuite) TestAddReview_PrependsNewest() {
	existing := testutil.CreateTestReview("r1", "123", 3, s.now.Add(-time.Hour))
	s.store.On("List", s.ctx, "123").Return([]models.Review{existing}, nil)
	s.slice.FetchReviews(s.ctx, "123")

	created := testutil.CreateTestReview("r2", "123", 5, s.now)
	s.store.On("Create", s.ctx, "123", mock.Anything).Return(&created, nil)

	s.slice.AddReview(s.ctx, "123", testutil.CreateTestReviewInput())

	got := s.slice.Snapshot().Reviews
	s.Require().Len(got, 2)
	s.Equal("r2", got[0].ID)
	s.Equal("123", got[0].MovieID)
	s.Equal("r1", got[1].ID)
}

func (s *ReviewsSliceTestSuite) TestAddReview_SubmitFailure() {
	input := models.ReviewInput{Name: "John Doe", Rating: 4, Comment: "Great movie!"}
	s.store.On("Create", s.ctx, "123", input).Return(nil, errors.New("Network error"))

	result := s.slice.AddReview(s.ctx, "123", input)

	s.False(result.IsOk())
	s.EqualError(result.Err(), "Network error")
	got := s.slice.Snapshot()
	s.Empty(got.Reviews)
	s.False(got.IsSubmitting)
	s.Equal("Failed to add review", got.Error)
}

func (s *ReviewsSliceTestSuite) TestAddReview_NilReviewIsFailure() {
	s.store.On("Create", s.ctx, "123", mock.Anything).Return(nil, nil)

	result := s.slice.AddReview(s.ctx, "123", testutil.CreateTestReviewInput())

	s.False(result.IsOk())
	s.Equal(reviews.ErrAddFailed, s.slice.Snapshot().Error)
}

func (s *ReviewsSliceTestSuite) TestAddReview_ClearsPreviousError() {
	s.store.On("Create", s.ctx, "123", mock.Anything).Return(nil, errors.New("boom")).Once()
	s.slice.AddReview(s.ctx, "123", testutil.CreateTestReviewInput())
	s.Require().True(s.slice.Snapshot().HasError())

	created := testutil.CreateTestReview("r1", "123", 4, s.now)
	s.store.On("Create", s.ctx, "123", mock.Anything).Return(&created, nil).Once()
	s.slice.AddReview(s.ctx, "123", testutil.CreateTestReviewInput())

	s.False(s.slice.Snapshot().HasError())
}

func (s *ReviewsSliceTestSuite) TestClearReviews_Idempotent() {
	s.store.On("List", s.ctx, "123").
		Return([]models.Review{testutil.CreateTestReview("r1", "123", 4, s.now)}, nil)
	s.slice.FetchReviews(s.ctx, "123")

	s.slice.ClearReviews()
	s.Empty(s.slice.Snapshot().Reviews)
	s.slice.ClearReviews()
	s.Empty(s.slice.Snapshot().Reviews)
}

func (s *ReviewsSliceTestSuite) TestClearError_Idempotent() {
	s.store.On("List", s.ctx, "123").Return(nil, errors.New("boom"))
	s.slice.FetchReviews(s.ctx, "123")
	s.Require().NotEmpty(s.slice.Snapshot().Error)

	s.slice.ClearError()
	s.Empty(s.slice.Snapshot().Error)
	s.slice.ClearError()
	s.Empty(s.slice.Snapshot().Error)
}

func (s *ReviewsSliceTestSuite) TestSnapshotIsACopy() {
	s.store.On("List", s.ctx, "123").
		Return([]models.Review{testutil.CreateTestReview("r1", "123", 4, s.now)}, nil)
	s.slice.FetchReviews(s.ctx, "123")

	snap := s.slice.Snapshot()
	snap.Reviews[0].Comment = "edited"

	s.Equal("Great movie!", s.slice.Snapshot().Reviews[0].Comment)
}

func TestReviewsSliceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewsSliceTestSuite))
}

// racingFetches starts a fetch for "old", then one for "new", resolves "new"
// first and "old" last, and returns the final state.
func racingFetches(t *testing.T, opts ...reviews.Option) (reviews.State, models.Review, models.Review) {
	t.Helper()
	ctx := context.Background()
	store := new(testutil.MockReviewStore)
	slice := reviews.New(store, logger.NewNoopLogger(), opts...)

	oldReview := testutil.CreateTestReview("old-1", "old", 2, time.Now())
	newReview := testutil.CreateTestReview("new-1", "new", 5, time.Now())
	releaseOld := make(chan time.Time)
	releaseNew := make(chan time.Time)
	store.On("List", mock.Anything, "old").WaitUntil(releaseOld).Return([]models.Review{oldReview}, nil)
	store.On("List", mock.Anything, "new").WaitUntil(releaseNew).Return([]models.Review{newReview}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		slice.FetchReviews(ctx, "old")
	}()
	require.Eventually(t, func() bool { return slice.Snapshot().IsLoading }, time.Second, time.Millisecond)

	newDone := make(chan struct{})
	pending := make(chan struct{}, 1)
	slice.OnAction(func(_ string, a state.Action) {
		if p, ok := a.(reviews.FetchPending); ok && p.MovieID == "new" {
			pending <- struct{}{}
		}
	})
	go func() {
		slice.FetchReviews(ctx, "new")
		close(newDone)
	}()
	<-pending

	close(releaseNew)
	<-newDone
	close(releaseOld)
	wg.Wait()

	return slice.Snapshot(), oldReview, newReview
}

func TestFetchReviews_LastResolutionWins(t *testing.T) {
	final, oldReview, _ := racingFetches(t)

	assert.Equal(t, []models.Review{oldReview}, final.Reviews)
	assert.False(t, final.IsLoading)
}

func TestFetchReviews_StaleGuardKeepsNewest(t *testing.T) {
	final, _, newReview := racingFetches(t, reviews.WithStaleGuard())

	assert.Equal(t, []models.Review{newReview}, final.Reviews)
	assert.False(t, final.IsLoading)
}

func TestFetchReviews_StaleGuardDropsResponseAfterClear(t *testing.T) {
	ctx := context.Background()
	store := new(testutil.MockReviewStore)
	slice := reviews.New(store, logger.NewNoopLogger(), reviews.WithStaleGuard())

	release := make(chan time.Time)
	store.On("List", mock.Anything, "123").WaitUntil(release).
		Return([]models.Review{testutil.CreateTestReview("r1", "123", 4, time.Now())}, nil)

	done := make(chan reviews.State)
	go func() { done <- slice.FetchReviews(ctx, "123") }()
	require.Eventually(t, func() bool { return slice.Snapshot().IsLoading }, time.Second, time.Millisecond)

	slice.ClearReviews()
	close(release)
	final := <-done

	assert.Empty(t, final.Reviews)
	assert.False(t, final.IsLoading)
}

func TestReduce_UnknownActionPanics(t *testing.T) {
	assert.Panics(t, func() {
		reviews.Reduce(reviews.InitialState(), nil)
	})
}
