package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/dataset"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}

func TestBuildLoader(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "movies.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"id": 1, "title": "Heat"}]`), 0644))

	tests := []struct {
		name     string
		cfg      config.CatalogConfig
		wantName string
		wantErr  bool
	}{
		{"embedded", config.CatalogConfig{Source: config.SourceEmbedded}, "embedded", false},
		{"file", config.CatalogConfig{Source: config.SourceFile, Path: file}, "file:" + file, false},
		{"sqlite", config.CatalogConfig{Source: config.SourceSQLite, Path: filepath.Join(dir, "c.db")}, "sqlite", false},
		{"unknown", config.CatalogConfig{Source: "s3"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, name, closer, err := buildLoader(tt.cfg, discardLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer func() { _ = closer() }()
			assert.NotNil(t, loader)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestBuildApp_EmbeddedCatalog(t *testing.T) {
	cfg := config.Default()
	cfg.Remote.Enabled = false

	a, err := buildApp(cfg, discardLogger())
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	srv := httptest.NewServer(a.handler.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/status")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// First request loads nothing; status reflects the lazy cache.
	var st v1.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, string(catalog.SourceNone), st.Source)

	snap := a.engine.View(context.Background())
	assert.Equal(t, catalog.SourceLoader, snap.Source())
	assert.Positive(t, snap.Len())
}

func TestBuildApp_SQLiteCatalog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	db, err := dataset.OpenSQLite(dbPath)
	require.NoError(t, err)
	store := dataset.NewSQLiteStore(db, discardLogger())
	_, _, err = store.Import(context.Background(), jsonReader(`[{"id": 42, "title": "Heat", "year": 1995}]`))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg := config.Default()
	cfg.Remote.Enabled = false
	cfg.Catalog.Source = config.SourceSQLite
	cfg.Catalog.Path = dbPath

	a, err := buildApp(cfg, discardLogger())
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	m, ok := a.engine.GetByID(context.Background(), 42)
	require.True(t, ok)
	assert.Equal(t, "Heat", m.Title)
}

func TestBuildApp_MissingFileFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.Remote.Enabled = false
	cfg.Catalog.Source = config.SourceFile
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.json")

	a, err := buildApp(cfg, discardLogger())
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	snap := a.engine.View(context.Background())
	assert.Equal(t, catalog.SourceFallback, snap.Source())
	assert.Equal(t, 21, snap.Len())
}

func TestBuildApp_VerifyReachesRemote(t *testing.T) {
	var pings atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pings.Add(1)
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	cfg := config.Default()
	cfg.Remote.URL = upstream.URL

	a, err := buildApp(cfg, discardLogger())
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	srv := httptest.NewServer(a.handler.Handler())
	defer srv.Close()

	verify := func() v1.VerifyResponse {
		resp, err := http.Get(srv.URL + "/api/v1/verify")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		var out v1.VerifyResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	assert.True(t, verify().Connections.Remote)
	assert.True(t, verify().Connections.Remote)
	assert.Equal(t, int32(2), pings.Load())

	upstream.Close()
	assert.False(t, verify().Connections.Remote)
}

func TestLoadServeConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("MARQUEE_CONFIG", "")

	cfg, path, err := loadServeConfig("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, 8585, cfg.Server.Port)
}

func TestLoadServeConfig_ExplicitEnvMissing(t *testing.T) {
	t.Setenv("MARQUEE_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, _, err := loadServeConfig("")
	require.Error(t, err)
}

func TestLoadServeConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 9090
`), 0644))

	cfg, got, err := loadServeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, config.SourceEmbedded, cfg.Catalog.Source)
}
