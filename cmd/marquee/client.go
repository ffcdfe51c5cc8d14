package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	v1 "github.com/vmunix/marquee/internal/api/v1"
)

// ErrMovieNotFound is returned by Client.Movie for an unknown id.
var ErrMovieNotFound = errors.New("movie not found")

// Client wraps HTTP calls to the marquee server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new marquee API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// apiError is an error body returned by the server.
type apiError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *apiError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("server error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &apiError{StatusCode: resp.StatusCode, Code: payload.Code, Message: payload.Error}
	}
	return &apiError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return readAPIError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", reader)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return readAPIError(resp)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// MovieQuery holds the filters for Client.Movies.
type MovieQuery struct {
	Search string
	Genre  string
	Sort   string
	Limit  int
}

func (q MovieQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Genre != "" {
		v.Set("genre", q.Genre)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

func withQuery(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

func limitQuery(limit int) url.Values {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}

// Movies lists catalog movies matching q.
func (c *Client) Movies(q MovieQuery) (*v1.ListMoviesResponse, error) {
	var resp v1.ListMoviesResponse
	if err := c.get(withQuery("/api/v1/movies", q.values()), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TopRated returns the highest rated movies.
func (c *Client) TopRated(limit int) (*v1.ListMoviesResponse, error) {
	var resp v1.ListMoviesResponse
	if err := c.get(withQuery("/api/v1/movies/top", limitQuery(limit)), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Latest returns the most recent movies.
func (c *Client) Latest(limit int) (*v1.ListMoviesResponse, error) {
	var resp v1.ListMoviesResponse
	if err := c.get(withQuery("/api/v1/movies/latest", limitQuery(limit)), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Movie fetches one movie by id.
func (c *Client) Movie(id int) (*v1.MovieResponse, error) {
	var resp v1.MovieResponse
	if err := c.get(fmt.Sprintf("/api/v1/movies/%d", id), &resp); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %d", ErrMovieNotFound, id)
		}
		return nil, err
	}
	return &resp, nil
}

// Resolve fetches several movies by id. Unknown ids are omitted.
func (c *Client) Resolve(ids []int) (*v1.ListMoviesResponse, error) {
	var resp v1.ListMoviesResponse
	if err := c.post("/api/v1/movies/resolve", v1.ResolveRequest{IDs: ids}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Genres lists the distinct catalog genres.
func (c *Client) Genres() (*v1.GenresResponse, error) {
	var resp v1.GenresResponse
	if err := c.get("/api/v1/genres", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Home returns the landing page lists.
func (c *Client) Home() (*v1.HomeResponse, error) {
	var resp v1.HomeResponse
	if err := c.get("/api/v1/home", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Browse returns a titled movie page. params are passed through as query
// parameters (search, type, genre).
func (c *Client) Browse(params url.Values) (*v1.BrowseResponse, error) {
	var resp v1.BrowseResponse
	if err := c.get(withQuery("/api/v1/browse", params), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status returns the catalog cache state.
func (c *Client) Status() (*v1.StatusResponse, error) {
	var resp v1.StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify runs the server's catalog health checks.
func (c *Client) Verify() (*v1.VerifyResponse, error) {
	var resp v1.VerifyResponse
	if err := c.get("/api/v1/verify", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh forces a catalog reload.
func (c *Client) Refresh() (*v1.StatusResponse, error) {
	var resp v1.StatusResponse
	if err := c.post("/api/v1/catalog/refresh", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
