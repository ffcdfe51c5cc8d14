// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Catalog sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Remote  RemoteConfig  `toml:"remote"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogConfig selects the primary dataset and tunes the snapshot cache.
type CatalogConfig struct {
	Source        string        `toml:"source"`
	Path          string        `toml:"path"`
	Freshness     time.Duration `toml:"freshness"`
	RetryInterval time.Duration `toml:"retry_interval"`
	LoadTimeout   time.Duration `toml:"load_timeout"`
	WarmInterval  time.Duration `toml:"warm_interval"`
}

// RemoteConfig configures the single-title fallback lookup.
type RemoteConfig struct {
	Enabled  bool          `toml:"enabled"`
	URL      string        `toml:"url"`
	Timeout  time.Duration `toml:"timeout"`
	CacheTTL time.Duration `toml:"cache_ttl"`
}

// Default returns the configuration used for keys absent from the file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			Port:     8585,
			LogLevel: "info",
		},
		Catalog: CatalogConfig{
			Source:        SourceEmbedded,
			Freshness:     time.Hour,
			RetryInterval: time.Minute,
			LoadTimeout:   5 * time.Second,
		},
		Remote: RemoteConfig{
			Enabled:  true,
			URL:      "https://api.tvmaze.com",
			Timeout:  5 * time.Second,
			CacheTTL: 24 * time.Hour,
		},
	}
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults and environment substitution but skipping Validate.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &Error{Path: path, Missing: missing}
	}

	cfg := Default()
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
