package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/marquee/internal/movies"
	"github.com/narwhalmedia/marquee/internal/reviews"
	"github.com/narwhalmedia/marquee/internal/store"
	"github.com/narwhalmedia/marquee/internal/theme"
	"github.com/narwhalmedia/marquee/pkg/events"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
	"github.com/narwhalmedia/marquee/pkg/logger"
	"github.com/narwhalmedia/marquee/pkg/models"
	"github.com/narwhalmedia/marquee/test/testutil"
)

type StoreTestSuite struct {
	suite.Suite
	catalog *testutil.MockCatalog
	reviews *testutil.MockReviewStore
	prefs   *testutil.MockKeyValueStore
	store   *store.Store
	ctx     context.Context

	mu     sync.Mutex
	events []string
}

func (s *StoreTestSuite) SetupTest() {
	s.catalog = new(testutil.MockCatalog)
	s.reviews = new(testutil.MockReviewStore)
	s.prefs = new(testutil.MockKeyValueStore)
	s.ctx = context.Background()
	s.events = nil

	s.store = store.New(store.Dependencies{
		Catalog:     s.catalog,
		Reviews:     s.reviews,
		Preferences: s.prefs,
		EventBus:    events.NewInMemoryEventBus(logger.NewNoopLogger()),
		Logger:      logger.NewNoopLogger(),
	}, store.Options{PageSize: 10})

	s.Require().NoError(s.store.Subscribe(&events.HandlerFunc{
		Type: events.TypeStateChanged,
		Fn: func(_ context.Context, e interfaces.Event) error {
			p := e.Payload()
			s.mu.Lock()
			s.events = append(s.events, p[events.KeyAction].(string)+":"+p[events.KeyPhase].(string))
			s.mu.Unlock()
			return nil
		},
	}))
}

func (s *StoreTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
	s.catalog.AssertExpectations(s.T())
	s.reviews.AssertExpectations(s.T())
	s.prefs.AssertExpectations(s.T())
}

func (s *StoreTestSuite) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func (s *StoreTestSuite) TestInitialize_RestoresTheme() {
	s.prefs.On("Get", s.ctx, theme.StorageKey).Return("light", true, nil)

	s.store.Initialize(s.ctx)

	s.Equal(models.ThemeLight, s.store.Snapshot().Theme.Theme)
	s.Equal([]string{"theme/restored:fulfilled"}, s.seen())
}

func (s *StoreTestSuite) TestOpenMovie_LoadsDetailAndReviews() {
	// Arrange
	movie := testutil.CreateTestMovie(123, "Heat")
	review := testutil.CreateTestReview("r1", "123", 5, time.Now())
	s.catalog.On("GetByID", mock.Anything, "123").Return(&movie, nil)
	s.reviews.On("List", mock.Anything, "123").Return([]models.Review{review}, nil)

	// Act
	root := s.store.OpenMovie(s.ctx, "123")

	// Assert
	s.Require().NotNil(root.Movies.MovieDetail)
	s.Equal("Heat", root.Movies.MovieDetail.Title)
	s.Equal(movies.DetailLoaded, root.Movies.DetailStatus)
	s.Equal([]models.Review{review}, root.Reviews.Reviews)
	s.False(root.Reviews.IsLoading)
	s.False(root.Movies.IsLoading)
	s.Contains(s.seen(), "reviews/clearReviews:fulfilled")
	s.Contains(s.seen(), "movies/fetchMovieDetail:fulfilled")
	s.Contains(s.seen(), "reviews/fetchReviews:fulfilled")
}

func (s *StoreTestSuite) TestOpenMovie_ClearsPreviousMovieReviews() {
	old := testutil.CreateTestReview("r-old", "1", 2, time.Now())
	movie := testutil.CreateTestMovie(2, "Two")
	s.reviews.On("List", mock.Anything, "1").Return([]models.Review{old}, nil).Once()
	s.store.Reviews.FetchReviews(s.ctx, "1")

	s.catalog.On("GetByID", mock.Anything, "2").Return(&movie, nil)
	s.reviews.On("List", mock.Anything, "2").Return(nil, errors.New("offline")).Once()

	root := s.store.OpenMovie(s.ctx, "2")

	s.Empty(root.Reviews.Reviews)
	s.Equal(reviews.ErrFetchFailed, root.Reviews.Error)
	s.NotNil(root.Movies.MovieDetail)
}

func (s *StoreTestSuite) TestOpenMovie_NotFoundAndErrorStayDistinct() {
	s.catalog.On("GetByID", mock.Anything, "missing").Return(nil, nil)
	s.reviews.On("List", mock.Anything, "missing").Return([]models.Review{}, nil)

	root := s.store.OpenMovie(s.ctx, "missing")

	s.True(root.Movies.NotFound())
	s.Empty(root.Movies.Error)
	s.Empty(root.Reviews.Error)
}

func (s *StoreTestSuite) TestCloseMovie_ClearsReviews() {
	s.reviews.On("List", s.ctx, "123").
		Return([]models.Review{testutil.CreateTestReview("r1", "123", 4, time.Now())}, nil)
	s.store.Reviews.FetchReviews(s.ctx, "123")

	s.store.CloseMovie()

	s.Empty(s.store.Snapshot().Reviews.Reviews)
}

func (s *StoreTestSuite) TestWatchlistPublishes() {
	s.store.Watchlist.Add(testutil.CreateTestMovie(1, "One"))

	s.Equal([]string{"watchlist/addToWatchlist:fulfilled"}, s.seen())
	s.Len(s.store.Snapshot().Watchlist.Movies, 1)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
