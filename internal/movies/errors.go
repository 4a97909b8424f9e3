package movies

import "github.com/narwhalmedia/marquee/pkg/errors"

var errEmptyPage = errors.Internal("catalog returned no page")
