// Package catalog holds the in-memory movie catalog and answers read queries
// against it.
package catalog

//go:generate mockgen -source=loader.go -destination=mocks/loader_mock.go -package=mocks

import (
	"context"

	"github.com/vmunix/marquee/internal/movie"
)

// Loader produces the full set of raw records from the primary source.
// Load must return once ctx is done; a Cache never runs two Loads at once,
// so a Load that ignores cancellation holds up every later reload.
type Loader interface {
	Load(ctx context.Context) ([]movie.RawRecord, error)
}

// RemoteLookup fetches a single raw record by id from a network source.
type RemoteLookup interface {
	FetchByID(ctx context.Context, id int) (*movie.RawRecord, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]movie.RawRecord, error)

// Load calls f(ctx).
func (f LoaderFunc) Load(ctx context.Context) ([]movie.RawRecord, error) {
	return f(ctx)
}
