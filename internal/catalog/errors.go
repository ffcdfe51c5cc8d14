package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a movie id is neither in the catalog nor
	// available from the remote lookup.
	ErrNotFound = errors.New("movie not found")

	// ErrEmptyDataset indicates a loader returned zero records.
	ErrEmptyDataset = errors.New("loader returned no records")
)

// LoadError wraps a failure of the dataset loader. The cache absorbs it and
// keeps serving stale or fallback data.
type LoadError struct {
	Loader string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Loader, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// RemoteLookupError wraps a failure of the single-record remote lookup.
type RemoteLookupError struct {
	ID  int
	Err error
}

func (e *RemoteLookupError) Error() string {
	return fmt.Sprintf("remote lookup %d: %v", e.ID, e.Err)
}

func (e *RemoteLookupError) Unwrap() error {
	return e.Err
}
