package dataset

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db, discardLogger()), db
}

func TestSQLiteStore_ImportAndLoad(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	f, err := os.Open("testdata/mixed.json")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	imported, skipped, err := store.Import(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Equal(t, 3, skipped)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Severance", records[0].Name)
	assert.Equal(t, "Arrival", records[1].Title)
	assert.Equal(t, "https://example.com/severance.jpg", records[0].Image.URL())
}

func TestSQLiteStore_ImportReplaces(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	_, _, err := store.Import(ctx, strings.NewReader(`[{"id": 1, "title": "A"}, {"id": 2, "title": "B"}]`))
	require.NoError(t, err)
	_, _, err = store.Import(ctx, strings.NewReader(`[{"id": 3, "title": "C"}]`))
	require.NoError(t, err)

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].ID)
}

func TestSQLiteStore_FailedImportKeepsData(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	_, _, err := store.Import(ctx, strings.NewReader(`[{"id": 1, "title": "Keep"}]`))
	require.NoError(t, err)

	_, _, err = store.Import(ctx, strings.NewReader(`{"id": 2}`))
	assert.ErrorIs(t, err, ErrNotArray)

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Keep", records[0].Title)
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	store, _ := setupStore(t)

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteStore_LoadSkipsCorruptRows(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO catalog_records (position, movie_id, payload) VALUES (0, 0, 'garbage'), (1, 7, '{"id": 7, "title": "Good"}')`)
	require.NoError(t, err)

	records, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].ID)
}

func TestOpenSQLite_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
