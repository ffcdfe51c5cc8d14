package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFullWorkflow(t *testing.T) {
	tmp := t.TempDir()

	// 1. Write default config
	cfgPath := filepath.Join(tmp, "marquee", "config.toml")
	if err := WriteDefault(cfgPath, false); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	// 2. Override through the environment (t.Setenv auto-restores on cleanup)
	t.Setenv("MARQUEE_LOG_LEVEL", "debug")
	t.Setenv("MARQUEE_DATASET", "")

	// 3. The shipped default must validate as-is
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// 4. Verify env substitution worked
	if cfg.Server.LogLevel != "debug" {
		t.Errorf("expected log level substituted, got %q", cfg.Server.LogLevel)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("expected empty dataset path, got %q", cfg.Catalog.Path)
	}

	// 5. Verify values match the built-in defaults
	if cfg.Server.Port != 8585 {
		t.Errorf("expected default port 8585, got %d", cfg.Server.Port)
	}
	if cfg.Catalog.Freshness != time.Hour {
		t.Errorf("expected 1h freshness, got %v", cfg.Catalog.Freshness)
	}
	if !cfg.Remote.Enabled {
		t.Error("expected remote lookup enabled")
	}
}
