package dataset

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/vmunix/marquee/internal/movie"
)

//go:embed movies.json
var embeddedMovies []byte

// JSONLoader loads a JSON array of movie payloads.
type JSONLoader struct {
	name string
	read func() ([]byte, error)
	log  *slog.Logger
}

// Embedded returns a loader over the dataset bundled into the binary.
func Embedded(log *slog.Logger) *JSONLoader {
	return newJSONLoader("embedded", func() ([]byte, error) {
		return embeddedMovies, nil
	}, log)
}

// NewFileLoader returns a loader that reads path on every load. A missing
// file is a load error.
func NewFileLoader(path string, log *slog.Logger) *JSONLoader {
	return newJSONLoader("file:"+path, func() ([]byte, error) {
		return os.ReadFile(path)
	}, log)
}

func newJSONLoader(name string, read func() ([]byte, error), log *slog.Logger) *JSONLoader {
	if log == nil {
		log = slog.Default()
	}
	return &JSONLoader{name: name, read: read, log: log}
}

// Name identifies the loader in logs.
func (l *JSONLoader) Name() string {
	return l.name
}

// Load reads and decodes the dataset.
func (l *JSONLoader) Load(ctx context.Context) ([]movie.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := l.read()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	records, skipped, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		l.log.Warn("skipped malformed dataset entries", "loader", l.name, "skipped", skipped)
	}
	return records, nil
}
