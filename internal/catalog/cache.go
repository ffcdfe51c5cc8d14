package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vmunix/marquee/internal/movie"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultFreshness     = time.Hour
	DefaultRetryInterval = time.Minute
	DefaultLoadTimeout   = 5 * time.Second
)

// Stats describes the cache state at one instant.
type Stats struct {
	Generation  uint64
	Source      Source
	Movies      int
	LoadedAt    time.Time
	Reloads     int // successful loads
	Failures    int // failed load attempts
	LastError   string
	LastAttempt time.Time
	NextRetry   time.Time
}

// Cache owns the current catalog snapshot and decides when to reload it.
//
// Snapshot never fails. A snapshot produced by the loader is served as-is
// while younger than the freshness window. When a reload fails, the previous
// snapshot keeps being served (stale data is preferred over discarding it);
// with nothing to serve, the fallback dataset is installed.
//
// After a failure the next attempt waits for the retry interval, including
// when a stale snapshot is being served, so a broken source is not hit on
// every request. WithRetryInterval(0) retries on every call instead.
//
// At most one Loader.Load runs at a time. A load that outlives the load
// timeout keeps running in the background and later reloads wait on it
// rather than starting another.
type Cache struct {
	loader        Loader
	loaderName    string
	freshness     time.Duration
	retryInterval time.Duration
	loadTimeout   time.Duration
	now           func() time.Time
	fallback      func() []movie.Movie
	log           *slog.Logger

	group singleflight.Group

	mu          sync.RWMutex
	pending     *pendingLoad
	snap        *Snapshot
	generation  uint64
	nextRetry   time.Time
	lastAttempt time.Time
	reloads     int
	failures    int
	lastErr     error
}

// Option configures a Cache.
type Option func(*Cache)

// WithFreshness sets how long loader data is served before a reload.
func WithFreshness(d time.Duration) Option {
	return func(c *Cache) {
		c.freshness = d
	}
}

// WithRetryInterval sets the wait between reload attempts after a failure.
// Zero retries on every call.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Cache) {
		c.retryInterval = d
	}
}

// WithLoadTimeout bounds a single reload.
func WithLoadTimeout(d time.Duration) Option {
	return func(c *Cache) {
		c.loadTimeout = d
	}
}

// WithClock replaces time.Now (for testing).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithFallback replaces the built-in fallback dataset.
func WithFallback(fn func() []movie.Movie) Option {
	return func(c *Cache) {
		c.fallback = fn
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

// WithLoaderName labels the loader in logs and errors.
func WithLoaderName(name string) Option {
	return func(c *Cache) {
		c.loaderName = name
	}
}

// New creates an empty cache. Nothing is loaded until the first Snapshot.
func New(loader Loader, opts ...Option) *Cache {
	c := &Cache{
		loader:        loader,
		loaderName:    "dataset",
		freshness:     DefaultFreshness,
		retryInterval: DefaultRetryInterval,
		loadTimeout:   DefaultLoadTimeout,
		now:           time.Now,
		fallback:      movie.Fallback,
		snap:          emptySnapshot,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// Snapshot returns the current snapshot, reloading first when it is stale.
// Concurrent callers share a single reload.
func (c *Cache) Snapshot(ctx context.Context) *Snapshot {
	if snap, ok := c.current(); ok {
		return snap
	}
	return c.reload(ctx, false)
}

// Refresh forces a reload, subject to the same degradation rules.
func (c *Cache) Refresh(ctx context.Context) Stats {
	c.reload(ctx, true)
	return c.Stats()
}

// Stats reports the cache state without triggering a reload.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Stats{
		Generation:  c.snap.generation,
		Source:      c.snap.source,
		Movies:      c.snap.Len(),
		LoadedAt:    c.snap.loadedAt,
		Reloads:     c.reloads,
		Failures:    c.failures,
		LastAttempt: c.lastAttempt,
		NextRetry:   c.nextRetry,
	}
	if c.lastErr != nil {
		s.LastError = c.lastErr.Error()
	}
	return s
}

// current returns the installed snapshot and whether it can be served
// without a reload.
func (c *Cache) current() (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap, !c.reloadDueLocked(c.now())
}

func (c *Cache) reloadDueLocked(now time.Time) bool {
	s := c.snap
	if s.source == SourceLoader && !s.Empty() && now.Sub(s.loadedAt) < c.freshness {
		return false
	}
	if !s.Empty() && now.Before(c.nextRetry) {
		return false
	}
	return true
}

func (c *Cache) reload(ctx context.Context, force bool) *Snapshot {
	v, _, _ := c.group.Do("reload", func() (any, error) {
		if !force {
			if snap, ok := c.current(); ok {
				return snap, nil
			}
		}
		return c.load(ctx), nil
	})
	return v.(*Snapshot)
}

type loadResult struct {
	records []movie.RawRecord
	err     error
}

// pendingLoad is one running Loader.Load. res is written before done is
// closed.
type pendingLoad struct {
	done chan struct{}
	res  loadResult
}

// startLoad returns the running load, starting one if none is in flight.
// The load gets its own deadline so it is not cut short when the caller
// that started it stops waiting.
func (c *Cache) startLoad(ctx context.Context) *pendingLoad {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		c.log.Warn("previous catalog load still running, waiting on it", "loader", c.loaderName)
		return c.pending
	}

	p := &pendingLoad{done: make(chan struct{})}
	c.pending = p
	lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
	go func() {
		defer cancel()
		records, err := c.loader.Load(lctx)
		p.res = loadResult{records: records, err: err}

		c.mu.Lock()
		c.pending = nil
		c.mu.Unlock()
		close(p.done)
	}()
	return p
}

// load waits up to the load timeout for the loader, detached from the
// caller's cancellation so waiters sharing the reload are not failed by one
// caller going away.
func (c *Cache) load(ctx context.Context) *Snapshot {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
	defer cancel()

	c.mu.Lock()
	c.lastAttempt = c.now()
	c.mu.Unlock()

	c.log.Debug("reloading catalog", "loader", c.loaderName)

	p := c.startLoad(ctx)

	var res loadResult
	select {
	case <-p.done:
		res = p.res
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	if res.err == nil && len(res.records) == 0 {
		res.err = ErrEmptyDataset
	}
	if res.err != nil {
		return c.degrade(&LoadError{Loader: c.loaderName, Err: res.err})
	}
	return c.install(movie.NormalizeAll(res.records))
}

func (c *Cache) install(movies []movie.Movie) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.snap = &Snapshot{
		movies:     movies,
		loadedAt:   c.now(),
		source:     SourceLoader,
		generation: c.generation,
	}
	c.reloads++
	c.lastErr = nil
	c.nextRetry = time.Time{}

	c.log.Info("catalog loaded",
		"loader", c.loaderName,
		"movies", len(movies),
		"generation", c.generation,
	)
	return c.snap
}

func (c *Cache) degrade(err *LoadError) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.failures++
	c.lastErr = err
	c.nextRetry = now.Add(c.retryInterval)

	if !c.snap.Empty() {
		c.log.Warn("catalog reload failed, serving previous snapshot",
			"error", err,
			"source", c.snap.source,
			"age", now.Sub(c.snap.loadedAt).Round(time.Second),
		)
		return c.snap
	}

	fallback := c.fallback()
	c.generation++
	c.snap = &Snapshot{
		movies:     fallback,
		loadedAt:   now,
		source:     SourceFallback,
		generation: c.generation,
	}
	c.log.Warn("catalog reload failed, serving fallback dataset",
		"error", err,
		"movies", len(fallback),
	)
	return c.snap
}
