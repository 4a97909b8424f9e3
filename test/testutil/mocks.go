package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/narwhalmedia/marquee/pkg/models"
)

// MockKeyValueStore is a mock for the preference store
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// MockReviewStore is a mock for the remote review store
type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(ctx context.Context, movieID string, input models.ReviewInput) (*models.Review, error) {
	args := m.Called(ctx, movieID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewStore) List(ctx context.Context, movieID string) ([]models.Review, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

// MockCatalog is a mock for the remote movie catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) SearchByGenre(ctx context.Context, genre string, page int) (*models.MoviePage, error) {
	args := m.Called(ctx, genre, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MoviePage), args.Error(1)
}

func (m *MockCatalog) ListGenres(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockCatalog) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}
