package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "marquee", "config.toml")

	require.NoError(t, WriteDefault(path, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[server]")
	assert.Contains(t, string(content), "[catalog]")
	assert.Contains(t, string(content), "[remote]")
	assert.Contains(t, string(content), "${MARQUEE_LOG_LEVEL:-info}")
}

func TestWriteDefault_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine"), 0644))

	err := WriteDefault(path, false)
	require.ErrorIs(t, err, ErrExists)
	content, _ := os.ReadFile(path)
	assert.Equal(t, "# mine", string(content), "existing file is untouched")

	require.NoError(t, WriteDefault(path, true))
	content, _ = os.ReadFile(path)
	assert.Contains(t, string(content), "[server]")
}

func TestConfig_Encode(t *testing.T) {
	cfg := Default()
	cfg.Server = ServerConfig{Host: "127.0.0.1", Port: 9000, LogLevel: "debug"}
	cfg.Catalog.Source = SourceSQLite
	cfg.Catalog.Path = "/var/lib/marquee/catalog.db"

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))

	out := buf.String()
	assert.Contains(t, out, "127.0.0.1")
	assert.Contains(t, out, "9000")
	assert.Contains(t, out, "/var/lib/marquee/catalog.db")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Server.Port, back.Server.Port)
	assert.Equal(t, cfg.Catalog.Path, back.Catalog.Path)
}
