package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/marquee/internal/infrastructure/preferences"
	"github.com/narwhalmedia/marquee/internal/store"
	"github.com/narwhalmedia/marquee/internal/theme"
	"github.com/narwhalmedia/marquee/pkg/logger"
	"github.com/narwhalmedia/marquee/pkg/models"
	"github.com/narwhalmedia/marquee/test/testutil"
)

func newTestApp(catalog *testutil.MockCatalog, reviews *testutil.MockReviewStore) *app {
	log := logger.NewNoopLogger()
	return &app{
		log: log,
		store: store.New(store.Dependencies{
			Catalog:     catalog,
			Reviews:     reviews,
			Preferences: preferences.NewMemory(),
			Logger:      log,
		}, store.Options{PageSize: 10}),
	}
}

func TestRun_Movie(t *testing.T) {
	catalog := new(testutil.MockCatalog)
	reviews := new(testutil.MockReviewStore)
	movie := testutil.CreateTestMovie(1, "Heat")
	catalog.On("GetByID", mock.Anything, "tt1").Return(&movie, nil)
	reviews.On("List", mock.Anything, "tt1").
		Return([]models.Review{testutil.CreateTestReview("r1", "tt1", 4, time.Now())}, nil)

	var buf bytes.Buffer
	code := run(context.Background(), newTestApp(catalog, reviews), &printer{w: &buf}, []string{"movie", "tt1"})

	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "Heat (2020)")
	assert.Contains(t, buf.String(), "★★★★☆ John Doe")
}

func TestRun_MovieNotFound(t *testing.T) {
	catalog := new(testutil.MockCatalog)
	reviews := new(testutil.MockReviewStore)
	catalog.On("GetByID", mock.Anything, "nope").Return(nil, nil)
	reviews.On("List", mock.Anything, "nope").Return([]models.Review{}, nil)

	var buf bytes.Buffer
	code := run(context.Background(), newTestApp(catalog, reviews), &printer{w: &buf}, []string{"movie", "nope"})

	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "Movie Not Found")
}

func TestRun_MovieNotFoundJSON(t *testing.T) {
	catalog := new(testutil.MockCatalog)
	reviews := new(testutil.MockReviewStore)
	catalog.On("GetByID", mock.Anything, "nope").Return(nil, nil)
	reviews.On("List", mock.Anything, "nope").Return([]models.Review{}, nil)

	var buf bytes.Buffer
	code := run(context.Background(), newTestApp(catalog, reviews), &printer{w: &buf, json: true}, []string{"movie", "nope"})

	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), `"detailStatus": "not_found"`)
}

func TestExecute_ReleasesStorageBeforeReturning(t *testing.T) {
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "prefs.db")
	t.Setenv("MARQUEE_REVIEWS__PATH", filepath.Join(dir, "reviews.db"))
	t.Setenv("MARQUEE_PREFERENCES__DRIVER", "bolt")
	t.Setenv("MARQUEE_PREFERENCES__PATH", prefsPath)
	t.Setenv("MARQUEE_LOGGER__LEVEL", "error")
	t.Setenv("MARQUEE_NATS__URL", "")

	assert.Equal(t, 0, execute(false, false, []string{"theme", "light"}))
	assert.Equal(t, 2, execute(false, false, []string{"bogus"}))

	// The bolt file lock is only free again if execute closed the store.
	prefs, err := preferences.OpenBolt(prefsPath)
	require.NoError(t, err)
	defer prefs.Close()

	value, found, err := prefs.Get(context.Background(), theme.StorageKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", value)
}

func TestRun_ReviewValidation(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApp(new(testutil.MockCatalog), new(testutil.MockReviewStore))

	code := run(context.Background(), a, &printer{w: &buf}, []string{"review", "-name", " ", "-rating", "7", "tt1"})

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "Name is required")
	assert.Contains(t, buf.String(), "Rating must be between 1 and 5")
}

func TestRun_ReviewFailure(t *testing.T) {
	reviews := new(testutil.MockReviewStore)
	reviews.On("Create", mock.Anything, "tt1", mock.Anything).Return(nil, errors.New("offline"))

	var buf bytes.Buffer
	code := run(context.Background(), newTestApp(new(testutil.MockCatalog), reviews), &printer{w: &buf},
		[]string{"review", "-name", "Ann", "-rating", "5", "-comment", "Loved it", "tt1"})

	assert.Equal(t, 1, code)
}

func TestRun_Theme(t *testing.T) {
	a := newTestApp(new(testutil.MockCatalog), new(testutil.MockReviewStore))
	ctx := context.Background()

	var buf bytes.Buffer
	assert.Equal(t, 0, run(ctx, a, &printer{w: &buf}, []string{"theme", "toggle"}))
	assert.Equal(t, "light\n", buf.String())

	buf.Reset()
	assert.Equal(t, 1, run(ctx, a, &printer{w: &buf}, []string{"theme", "sepia"}))
}

func TestRun_BrowseFiltersTitles(t *testing.T) {
	catalog := new(testutil.MockCatalog)
	catalog.On("SearchByGenre", mock.Anything, "Action", 2).Return(&models.MoviePage{
		Results: []models.Movie{
			testutil.CreateTestMovie(1, "Heat"),
			testutil.CreateTestMovie(2, "Ronin"),
		},
		TotalEntries: 25,
	}, nil)

	var buf bytes.Buffer
	code := run(context.Background(), newTestApp(catalog, new(testutil.MockReviewStore)), &printer{w: &buf},
		[]string{"browse", "-genre", "Action", "-page", "2", "-q", "ron"})

	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "Action (page 2 of 3)")
	assert.Contains(t, buf.String(), "Ronin")
	assert.NotContains(t, buf.String(), "Heat")
}
