// Package catalog is a REST client for the remote movie catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/narwhalmedia/marquee/pkg/errors"
	"github.com/narwhalmedia/marquee/pkg/interfaces"
	"github.com/narwhalmedia/marquee/pkg/models"
)

const (
	genresCacheKey = "catalog:genres"
	titleCacheKey  = "catalog:title:"
)

// Config configures a Client.
type Config struct {
	BaseURL  string
	APIKey   string
	Host     string
	PageSize int
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client talks to the catalog over HTTP. Genre lists and movie details are
// cached; searches are not.
type Client struct {
	baseURL    string
	apiKey     string
	host       string
	pageSize   int
	cacheTTL   time.Duration
	httpClient *http.Client
	cache      interfaces.Cache
	logger     interfaces.Logger
}

// NewClient creates a new catalog client
func NewClient(cfg Config, cache interfaces.Cache, logger interfaces.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		host:     cfg.Host,
		pageSize: pageSize,
		cacheTTL: cfg.CacheTTL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:  cache,
		logger: logger.WithFields(interfaces.String("component", "catalog")),
	}
}

// envelope is the catalog's response wrapper.
type envelope[T any] struct {
	Results      T   `json:"results"`
	TotalEntries int `json:"total_entries,omitempty"`
}

// SearchByGenre returns one page of movies; an empty genre searches all.
func (c *Client) SearchByGenre(ctx context.Context, genre string, page int) (*models.MoviePage, error) {
	q := url.Values{}
	if genre != "" {
		q.Set("genre", genre)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(c.pageSize))

	var body envelope[[]models.Movie]
	if _, err := c.get(ctx, "/titles?"+q.Encode(), &body); err != nil {
		return nil, errors.RemoteRead("search movies", err)
	}

	results := body.Results
	if results == nil {
		results = []models.Movie{}
	}
	return &models.MoviePage{Results: results, TotalEntries: body.TotalEntries}, nil
}

// ListGenres returns the catalog's genres.
func (c *Client) ListGenres(ctx context.Context) ([]models.Genre, error) {
	if cached, ok := c.cached(ctx, genresCacheKey); ok {
		if genres, ok := cached.([]models.Genre); ok {
			return genres, nil
		}
	}

	var body envelope[[]models.Genre]
	if _, err := c.get(ctx, "/titles/utils/genres", &body); err != nil {
		return nil, errors.RemoteRead("list genres", err)
	}

	genres := make([]models.Genre, 0, len(body.Results))
	for _, g := range body.Results {
		if g.Name != "" {
			genres = append(genres, g)
		}
	}

	c.store(ctx, genresCacheKey, genres)
	return genres, nil
}

// GetByID returns a single movie. A null result or a 404 is errors.NotFound.
func (c *Client) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	key := titleCacheKey + id
	if cached, ok := c.cached(ctx, key); ok {
		if movie, ok := cached.(models.Movie); ok {
			return &movie, nil
		}
	}

	var body envelope[*models.Movie]
	status, err := c.get(ctx, "/titles/"+url.PathEscape(id), &body)
	if status == http.StatusNotFound {
		return nil, errors.NotFound(fmt.Sprintf("movie %s not found", id))
	}
	if err != nil {
		return nil, errors.RemoteRead("get movie", err)
	}
	if body.Results == nil {
		return nil, errors.NotFound(fmt.Sprintf("movie %s not found", id))
	}

	c.store(ctx, key, *body.Results)
	return body.Results, nil
}

// get performs a GET against path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
	}
	if c.host != "" {
		req.Header.Set("X-RapidAPI-Host", c.host)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("catalog request",
		interfaces.String("path", path),
		interfaces.Int("status", resp.StatusCode),
		interfaces.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
	}
	return resp.StatusCode, nil
}

func (c *Client) cached(ctx context.Context, key string) (interface{}, bool) {
	if c.cache == nil {
		return nil, false
	}
	v, err := c.cache.Get(ctx, key)
	if err != nil || v == nil {
		return nil, false
	}
	return v, true
}

func (c *Client) store(ctx context.Context, key string, v interface{}) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.cache.Set(ctx, key, v, c.cacheTTL); err != nil {
		c.logger.Warn("Failed to cache catalog response",
			interfaces.String("key", key),
			interfaces.Error(err))
	}
}
