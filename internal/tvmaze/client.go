// Package tvmaze provides a client for the TVMaze shows API, used to look up
// titles missing from the catalog.
package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/movie"
)

const (
	DefaultBaseURL  = "https://api.tvmaze.com"
	DefaultTimeout  = 5 * time.Second
	DefaultCacheTTL = 24 * time.Hour

	// DefaultPingID is the show fetched by Ping.
	DefaultPingID = 1
)

// ErrNotFound is returned when a show doesn't exist in TVMaze.
var ErrNotFound = fmt.Errorf("tvmaze: %w", catalog.ErrNotFound)

// Client is a TVMaze API client. It implements catalog.RemoteLookup.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache
	pingID     int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithCacheTTL sets the cache TTL. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithPingID sets the show fetched by Ping.
func WithPingID(id int) Option {
	return func(c *Client) {
		c.pingID = id
	}
}

// NewClient creates a new TVMaze client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		cache:  newCache(DefaultCacheTTL),
		pingID: DefaultPingID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchByID fetches a show by TVMaze id. Successful lookups are cached.
func (c *Client) FetchByID(ctx context.Context, id int) (*movie.RawRecord, error) {
	if rec, ok := c.cache.get(id); ok {
		return rec, nil
	}
	rec, err := c.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.set(id, *rec)
	return rec, nil
}

// Ping checks that the API answers. It always goes to the network; a 404
// for the ping show still counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.fetch(ctx, c.pingID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, id int) (*movie.RawRecord, error) {
	url := fmt.Sprintf("%s/shows/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var rec movie.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &rec, nil
}

// APIError is a non-success, non-404 response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("TVMaze API error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("TVMaze API error: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}
