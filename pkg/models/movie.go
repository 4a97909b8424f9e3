package models

// Movie is a catalog entry. Movies are immutable once fetched.
type Movie struct {
	ID          int      `json:"id"`
	Key         string   `json:"_id"` // review-association key
	Title       string   `json:"title"`
	ReleaseYear int      `json:"release_year,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Rating      float64  `json:"vote_average,omitempty"`
}

// Genre is read-only catalog reference data.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MoviePage is one page of a catalog search.
type MoviePage struct {
	Results      []Movie `json:"results"`
	TotalEntries int     `json:"total_entries"`
}
