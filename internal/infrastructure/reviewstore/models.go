package reviewstore

import (
	"time"

	"github.com/narwhalmedia/marquee/pkg/models"
)

// ReviewModel is a row of the reviews collection.
type ReviewModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" validate:"required,uuid4"`
	MovieID   string    `gorm:"not null;index:idx_reviews_movie_created,priority:1" validate:"required"`
	Name      string    `gorm:"not null" validate:"required"`
	Rating    int       `gorm:"not null" validate:"gte=1,lte=5"`
	Comment   string    `gorm:"type:text;not null" validate:"required"`
	CreatedAt time.Time `gorm:"not null;index:idx_reviews_movie_created,priority:2"`
}

// TableName pins the collection name.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the row to a Review.
func (m *ReviewModel) ToDomain() models.Review {
	return models.Review{
		ID:        m.ID,
		Name:      m.Name,
		Rating:    m.Rating,
		Comment:   m.Comment,
		MovieID:   m.MovieID,
		CreatedAt: m.CreatedAt,
	}
}
