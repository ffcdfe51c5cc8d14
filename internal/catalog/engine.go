package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vmunix/marquee/internal/movie"
)

// DefaultRemoteTimeout bounds a single remote lookup.
const DefaultRemoteTimeout = 5 * time.Second

// Engine answers catalog queries. Each call evaluates against the snapshot
// current at call time; two calls may observe different generations if a
// reload lands in between. Use View to run several queries against one
// snapshot.
type Engine struct {
	cache         *Cache
	remote        RemoteLookup
	remoteTimeout time.Duration
	log           *slog.Logger
}

// NewEngine creates a query engine over cache. remote may be nil, in which
// case GetByID never leaves the catalog.
func NewEngine(cache *Cache, remote RemoteLookup, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		cache:         cache,
		remote:        remote,
		remoteTimeout: DefaultRemoteTimeout,
		log:           log,
	}
}

// SetRemoteTimeout overrides DefaultRemoteTimeout. Non-positive values are
// ignored.
func (e *Engine) SetRemoteTimeout(d time.Duration) {
	if d > 0 {
		e.remoteTimeout = d
	}
}

// View returns the current snapshot.
func (e *Engine) View(ctx context.Context) *Snapshot {
	return e.cache.Snapshot(ctx)
}

// Stats reports the cache state.
func (e *Engine) Stats() Stats {
	return e.cache.Stats()
}

// Refresh forces a catalog reload.
func (e *Engine) Refresh(ctx context.Context) Stats {
	return e.cache.Refresh(ctx)
}

// GetByID returns the movie with the given id. Catalog misses are looked up
// remotely; any remote failure is reported as not found.
func (e *Engine) GetByID(ctx context.Context, id int) (movie.Movie, bool) {
	return e.byID(ctx, e.View(ctx), id)
}

// Resolve looks up each id in order, dropping the ones that cannot be found.
// Once ctx is done, remaining misses are dropped without a remote lookup.
func (e *Engine) Resolve(ctx context.Context, ids []int) []movie.Movie {
	snap := e.View(ctx)
	out := make([]movie.Movie, 0, len(ids))
	for _, id := range ids {
		if m, ok := e.byID(ctx, snap, id); ok {
			out = append(out, m)
		}
	}
	return out
}

// All returns the whole catalog in snapshot order.
func (e *Engine) All(ctx context.Context) []movie.Movie {
	return e.View(ctx).All()
}

// Search matches query against titles, ignoring case.
func (e *Engine) Search(ctx context.Context, query string) []movie.Movie {
	return e.View(ctx).Search(query)
}

// Suggest returns titles similar to query.
func (e *Engine) Suggest(ctx context.Context, query string, limit int) []string {
	return e.View(ctx).Suggest(query, limit)
}

// FilterByGenre returns the movies in genre.
func (e *Engine) FilterByGenre(ctx context.Context, genre string) []movie.Movie {
	return e.View(ctx).FilterByGenre(genre)
}

// TopRated returns the highest rated movies.
func (e *Engine) TopRated(ctx context.Context, limit int) []movie.Movie {
	return e.View(ctx).TopRated(limit)
}

// Latest returns the newest movies.
func (e *Engine) Latest(ctx context.Context, limit int) []movie.Movie {
	return e.View(ctx).Latest(limit)
}

// FilterAndSort filters by genre and orders by key.
func (e *Engine) FilterAndSort(ctx context.Context, genre string, key SortKey) []movie.Movie {
	return e.View(ctx).FilterAndSort(genre, key)
}

// AllGenres returns the distinct, sorted genres.
func (e *Engine) AllGenres(ctx context.Context) []string {
	return e.View(ctx).Genres()
}

func (e *Engine) byID(ctx context.Context, snap *Snapshot, id int) (movie.Movie, bool) {
	if m, ok := snap.ByID(id); ok {
		return m, true
	}
	if e.remote == nil || ctx.Err() != nil {
		return movie.Movie{}, false
	}

	m, err := e.fetchRemote(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			e.log.Debug("movie not found remotely", "id", id)
		} else {
			e.log.Warn("remote lookup failed", "id", id, "error", err)
		}
		return movie.Movie{}, false
	}
	return m, true
}

func (e *Engine) fetchRemote(ctx context.Context, id int) (movie.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, e.remoteTimeout)
	defer cancel()

	raw, err := e.remote.FetchByID(ctx, id)
	if err != nil {
		return movie.Movie{}, &RemoteLookupError{ID: id, Err: err}
	}
	if raw == nil {
		return movie.Movie{}, &RemoteLookupError{ID: id, Err: ErrNotFound}
	}
	return movie.Normalize(*raw), nil
}
