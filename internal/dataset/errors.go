// Package dataset provides the primary catalog loaders: the bundled JSON
// dataset, a JSON file on disk, and a SQLite store of imported payloads.
package dataset

import "errors"

var (
	// ErrNotArray indicates the payload is not a JSON array.
	ErrNotArray = errors.New("dataset is not a JSON array")

	// ErrNoUsableRecords indicates every element of a non-empty payload was
	// skipped.
	ErrNoUsableRecords = errors.New("dataset has no usable records")
)
