// Package v1 implements the native REST API over the movie catalog.
package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/movie"
)

// Config holds API server configuration.
type Config struct {
	HomeLimit    int           // rows per list on /home and default for /movies/top|latest
	BrowseLimit  int           // rows for /browse?type=top|latest
	SuggestLimit int           // "did you mean" titles on an empty search
	MaxLimit     int           // upper bound for any limit parameter
	Freshness    time.Duration // age after which /verify reports the catalog stale

	ResolveLimit   int           // ids per /movies/resolve request
	ResolveTimeout time.Duration // deadline for one /movies/resolve request, remote lookups included
}

// maxResolveBody bounds the /movies/resolve request body.
const maxResolveBody = 64 << 10

// DefaultConfig returns the stock API settings.
func DefaultConfig() Config {
	return Config{
		HomeLimit:    20,
		BrowseLimit:  120,
		SuggestLimit: 5,
		MaxLimit:     500,
		Freshness:    catalog.DefaultFreshness,

		ResolveLimit:   100,
		ResolveTimeout: 15 * time.Second,
	}
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// New creates a new v1 API server. Zero config fields take their defaults.
func New(deps ServerDeps, cfg Config, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	def := DefaultConfig()
	if cfg.HomeLimit <= 0 {
		cfg.HomeLimit = def.HomeLimit
	}
	if cfg.BrowseLimit <= 0 {
		cfg.BrowseLimit = def.BrowseLimit
	}
	if cfg.SuggestLimit <= 0 {
		cfg.SuggestLimit = def.SuggestLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = def.MaxLimit
	}
	if cfg.Freshness <= 0 {
		cfg.Freshness = def.Freshness
	}
	if cfg.ResolveLimit <= 0 {
		cfg.ResolveLimit = def.ResolveLimit
	}
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = def.ResolveTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, log: log}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Movies
	mux.HandleFunc("GET /api/v1/movies", s.listMovies)
	mux.HandleFunc("GET /api/v1/movies/top", s.topMovies)
	mux.HandleFunc("GET /api/v1/movies/latest", s.latestMovies)
	mux.HandleFunc("GET /api/v1/movies/{id}", s.getMovie)
	mux.HandleFunc("POST /api/v1/movies/resolve", s.resolveMovies)

	// Catalog views
	mux.HandleFunc("GET /api/v1/genres", s.listGenres)
	mux.HandleFunc("GET /api/v1/home", s.home)
	mux.HandleFunc("GET /api/v1/browse", s.browse)

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
	mux.HandleFunc("GET /api/v1/verify", s.verify)
	mux.HandleFunc("POST /api/v1/catalog/refresh", s.refreshCatalog)
}

// Handler returns the API routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return LogRequests(mux, s.log)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.Atoi(idStr)
}

// queryLimit extracts an optional limit from the query string, capped at
// the configured maximum.
func (s *Server) queryLimit(r *http.Request, defaultVal int) (int, error) {
	val := r.URL.Query().Get("limit")
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer, got %q", val)
	}
	return min(n, s.cfg.MaxLimit), nil
}

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := catalog.Query{
		Search: query.Get("search"),
		Genre:  query.Get("genre"),
		Sort:   catalog.SortKey(query.Get("sort")),
	}
	if q.Sort != "" && !q.Sort.Valid() {
		writeError(w, http.StatusBadRequest, "INVALID_SORT",
			"sort must be one of rating_desc, rating_asc, year_desc, year_asc, title_asc")
		return
	}
	limit, err := s.queryLimit(r, 0)
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a non-negative integer")
		return
	}

	snap := s.deps.Catalog.View(r.Context())
	items := snap.Query(q)
	resp := ListMoviesResponse{Total: len(items)}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	resp.Items = moviesToResponse(items)
	if resp.Total == 0 && strings.TrimSpace(q.Search) != "" {
		resp.Suggestions = snap.Suggest(q.Search, s.cfg.SuggestLimit)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) topMovies(w http.ResponseWriter, r *http.Request) {
	limit, err := s.queryLimit(r, s.cfg.HomeLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", err.Error())
		return
	}
	items := s.deps.Catalog.TopRated(r.Context(), limit)
	writeJSON(w, http.StatusOK, ListMoviesResponse{Items: moviesToResponse(items), Total: len(items)})
}

func (s *Server) latestMovies(w http.ResponseWriter, r *http.Request) {
	limit, err := s.queryLimit(r, s.cfg.HomeLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", err.Error())
		return
	}
	items := s.deps.Catalog.Latest(r.Context(), limit)
	writeJSON(w, http.StatusOK, ListMoviesResponse{Items: moviesToResponse(items), Total: len(items)})
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	m, ok := s.deps.Catalog.GetByID(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
		return
	}

	writeJSON(w, http.StatusOK, movieToResponse(m))
}

func (s *Server) resolveMovies(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	body := http.MaxBytesReader(w, r.Body, maxResolveBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if len(req.IDs) > s.cfg.ResolveLimit {
		writeError(w, http.StatusBadRequest, "TOO_MANY_IDS",
			fmt.Sprintf("at most %d ids per request", s.cfg.ResolveLimit))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ResolveTimeout)
	defer cancel()
	items := s.deps.Catalog.Resolve(ctx, req.IDs)
	writeJSON(w, http.StatusOK, ListMoviesResponse{Items: moviesToResponse(items), Total: len(items)})
}

func (s *Server) listGenres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GenresResponse{Genres: s.deps.Catalog.AllGenres(r.Context())})
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	snap := s.deps.Catalog.View(r.Context())
	writeJSON(w, http.StatusOK, HomeResponse{
		TopRated:   moviesToResponse(snap.TopRated(s.cfg.HomeLimit)),
		Latest:     moviesToResponse(snap.Latest(s.cfg.HomeLimit)),
		Genres:     snap.Genres(),
		Generation: snap.Generation(),
	})
}

// browse picks one listing: search, then type=top, then type=latest, then
// genre (optionally sorted), then the whole catalog.
func (s *Server) browse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	search := strings.TrimSpace(query.Get("search"))
	genre := strings.TrimSpace(query.Get("genre"))
	sortKey := catalog.SortKey(query.Get("sort"))
	if sortKey != "" && !sortKey.Valid() {
		writeError(w, http.StatusBadRequest, "INVALID_SORT",
			"sort must be one of rating_desc, rating_asc, year_desc, year_asc, title_asc")
		return
	}

	resp := BrowseResponse{Title: "All Movies"}
	var items []movie.Movie
	switch {
	case search != "":
		items = s.deps.Catalog.Search(ctx, search)
		resp.Title = "Results for: " + search
		if len(items) == 0 {
			resp.Suggestions = s.deps.Catalog.Suggest(ctx, search, s.cfg.SuggestLimit)
		}
	case query.Get("type") == "top":
		items = s.deps.Catalog.TopRated(ctx, s.cfg.BrowseLimit)
		resp.Title = "Top Rated Movies"
	case query.Get("type") == "latest":
		items = s.deps.Catalog.Latest(ctx, s.cfg.BrowseLimit)
		resp.Title = "Latest Releases"
	case genre != "" && sortKey != "":
		items = s.deps.Catalog.FilterAndSort(ctx, genre, sortKey)
		resp.Title = "Genre: " + genre
	case genre != "":
		items = s.deps.Catalog.FilterByGenre(ctx, genre)
		resp.Title = "Genre: " + genre
	default:
		items = s.deps.Catalog.All(ctx)
	}

	resp.Items = moviesToResponse(items)
	resp.Total = len(items)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsToResponse(s.deps.Catalog.Stats()))
}

func (s *Server) refreshCatalog(w http.ResponseWriter, r *http.Request) {
	stats := s.deps.Catalog.Refresh(r.Context())
	s.log.Info("catalog refresh requested",
		"generation", stats.Generation,
		"source", stats.Source,
		"error", stats.LastError,
	)
	writeJSON(w, http.StatusOK, statsToResponse(stats))
}
