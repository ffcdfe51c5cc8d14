package v1

//go:generate mockgen -source=deps.go -destination=mocks/deps_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/movie"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Catalog defines the query engine operations the API serves. Single-list
// endpoints use the per-call queries; endpoints that combine several lists
// read them from one View.
type Catalog interface {
	View(ctx context.Context) *catalog.Snapshot
	GetByID(ctx context.Context, id int) (movie.Movie, bool)
	Resolve(ctx context.Context, ids []int) []movie.Movie
	All(ctx context.Context) []movie.Movie
	Search(ctx context.Context, query string) []movie.Movie
	Suggest(ctx context.Context, query string, limit int) []string
	FilterByGenre(ctx context.Context, genre string) []movie.Movie
	FilterAndSort(ctx context.Context, genre string, key catalog.SortKey) []movie.Movie
	TopRated(ctx context.Context, limit int) []movie.Movie
	Latest(ctx context.Context, limit int) []movie.Movie
	AllGenres(ctx context.Context) []string
	Stats() catalog.Stats
	Refresh(ctx context.Context) catalog.Stats
}

// RemoteChecker reports whether the remote metadata API answers. It must
// not answer from a cache.
type RemoteChecker interface {
	Ping(ctx context.Context) error
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Catalog Catalog

	// Optional dependencies (nil if not configured)
	Remote RemoteChecker // checked by /verify
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	return nil
}
