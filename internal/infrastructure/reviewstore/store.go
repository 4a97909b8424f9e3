// Package reviewstore persists reviews in a SQL database through gorm.
package reviewstore

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/narwhalmedia/marquee/pkg/database"
	"github.com/narwhalmedia/marquee/pkg/errors"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
	"github.com/narwhalmedia/marquee/pkg/models"
	"github.com/narwhalmedia/marquee/pkg/repository"
)

// Store is the remote review store backed by gorm.
type Store struct {
	db       *gorm.DB
	logger   interfaces.Logger
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a review store on db. Call Migrate before first use.
func New(db *gorm.DB, logger interfaces.Logger, opts ...Option) *Store {
	s := &Store{
		db:       db,
		logger:   logger.WithFields(interfaces.String("component", "reviewstore")),
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migrate applies pending schema migrations.
func (s *Store) Migrate() error {
	return database.NewMigrator(s.db, s.logger, Migrations()...).Migrate()
}

// Create stores a new review for movieID with a fresh id and timestamp. The
// input is stored as given. A record the collection rejects is a BadRequest,
// which retrying cannot fix.
func (s *Store) Create(ctx context.Context, movieID string, input models.ReviewInput) (*models.Review, error) {
	model := &ReviewModel{
		ID:        uuid.NewString(),
		MovieID:   movieID,
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: s.now().UTC(),
	}

	if err := s.validate.Struct(model); err != nil {
		return nil, errors.Wrap(errors.ErrorTypeBadRequest, "Failed to add review", err)
	}

	if err := repository.Create(ctx, s.db, model); err != nil {
		s.logger.Error("Failed to insert review",
			interfaces.String("movie_id", movieID),
			interfaces.Error(err))
		return nil, errors.RemoteWrite("Failed to add review", err)
	}

	review := model.ToDomain()
	return &review, nil
}

// List returns the reviews for movieID, newest first.
func (s *Store) List(ctx context.Context, movieID string) ([]models.Review, error) {
	rows, err := repository.FindAll[ReviewModel](ctx, s.db, repository.Query{
		Where: "movie_id = ?",
		Args:  []interface{}{movieID},
		Order: "created_at DESC, id DESC",
	})
	if err != nil {
		s.logger.Error("Failed to query reviews",
			interfaces.String("movie_id", movieID),
			interfaces.Error(err))
		return nil, errors.RemoteRead("Failed to fetch reviews", err)
	}

	reviews := make([]models.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, rows[i].ToDomain())
	}
	return reviews, nil
}

// Count returns the number of reviews stored for movieID.
func (s *Store) Count(ctx context.Context, movieID string) (int64, error) {
	n, err := repository.Count[ReviewModel](ctx, s.db, repository.Query{
		Where: "movie_id = ?",
		Args:  []interface{}{movieID},
	})
	if err != nil {
		return 0, errors.RemoteRead("Failed to count reviews", err)
	}
	return n, nil
}
