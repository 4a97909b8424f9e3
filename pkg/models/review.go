package models

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// MinRating is the lowest star rating a review may carry.
	MinRating = 1
	// MaxRating is the highest star rating a review may carry.
	MaxRating = 5
)

var validate = validator.New()

// Review is a user-submitted opinion about a movie. The id and creation time are
// assigned by the review store; reviews are never mutated after creation.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	MovieID   string    `json:"movieId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewInput is the draft a user submits.
type ReviewInput struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// Validate checks the draft the way the review form does and returns messages keyed by
// json field name. An empty map means the draft can be submitted. The state slices never
// call this; it is offered to presentation code.
func (in ReviewInput) Validate() map[string]string {
	trimmed := ReviewInput{
		Name:    strings.TrimSpace(in.Name),
		Rating:  in.Rating,
		Comment: strings.TrimSpace(in.Comment),
	}

	problems := make(map[string]string)

	var verrs validator.ValidationErrors
	if err := validate.Struct(trimmed); errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.StructField() {
			case "Name":
				problems["name"] = "Name is required"
			case "Comment":
				problems["comment"] = "Comment is required"
			case "Rating":
				problems["rating"] = "Rating must be between 1 and 5"
			}
		}
	}

	return problems
}
