package reviews

import "github.com/narwhalmedia/marquee/pkg/errors"

var errMissingReview = errors.Internal("review store returned no review")
