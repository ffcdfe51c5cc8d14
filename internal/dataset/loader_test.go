package dataset

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/marquee/internal/movie"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEmbedded_Load(t *testing.T) {
	records, err := Embedded(discardLogger()).Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, records)

	seen := make(map[int]bool)
	for _, r := range records {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}

	movies := movie.NormalizeAll(records)
	for _, m := range movies {
		assert.NotEmpty(t, m.Title, "movie %d has a title", m.ID)
		assert.NotZero(t, m.Year(), "movie %d has a year", m.ID)
		assert.NotContains(t, m.Plot, "<", "movie %d plot is sanitized", m.ID)
	}
}

func TestEmbedded_Name(t *testing.T) {
	assert.Equal(t, "embedded", Embedded(nil).Name())
}

func TestFileLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 3, "title": "Heat", "year": 1995}]`), 0644))

	l := NewFileLoader(path, discardLogger())
	records, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Heat", records[0].Title)
	assert.Equal(t, "file:"+path, l.Name())
}

func TestFileLoader_PicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "title": "Old"}]`), 0644))

	l := NewFileLoader(path, discardLogger())
	first, err := l.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "title": "New"}]`), 0644))
	second, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Old", first[0].Title)
	assert.Equal(t, "New", second[0].Title)
}

func TestFileLoader_MissingFile(t *testing.T) {
	l := NewFileLoader(filepath.Join(t.TempDir(), "missing.json"), discardLogger())
	_, err := l.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Embedded(discardLogger()).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
