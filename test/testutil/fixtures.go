package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/narwhalmedia/marquee/pkg/models"
)

// CreateTestMovie creates a test movie with default values.
func CreateTestMovie(id int, title string) models.Movie {
	return models.Movie{
		ID:          id,
		Key:         fmt.Sprintf("tt%07d", id),
		Title:       title,
		ReleaseYear: 2020,
		PosterURL:   "https://example.com/" + uuid.NewString() + ".jpg",
		Overview:    title + " overview",
		Genres:      []string{"Action"},
		Rating:      7.5,
	}
}

// CreateTestReview creates a stored review for movieID.
func CreateTestReview(id, movieID string, rating int, createdAt time.Time) models.Review {
	return models.Review{
		ID:        id,
		Name:      "John Doe",
		Rating:    rating,
		Comment:   "Great movie!",
		MovieID:   movieID,
		CreatedAt: createdAt,
	}
}

// CreateTestReviewInput creates a valid review draft.
func CreateTestReviewInput() models.ReviewInput {
	return models.ReviewInput{
		Name:    "John Doe",
		Rating:  4,
		Comment: "Great movie!",
	}
}

// CreateTestGenres returns a small genre list.
func CreateTestGenres() []models.Genre {
	return []models.Genre{
		{ID: 1, Name: "Action"},
		{ID: 2, Name: "Comedy"},
		{ID: 3, Name: "Drama"},
	}
}
