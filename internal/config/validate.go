// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

var validSources = map[string]bool{
	SourceEmbedded: true, SourceFile: true, SourceSQLite: true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Catalog validation
	if !validSources[c.Catalog.Source] {
		errs = append(errs, fmt.Sprintf("catalog.source: must be one of embedded, file, sqlite; got %q", c.Catalog.Source))
	}
	if (c.Catalog.Source == SourceFile || c.Catalog.Source == SourceSQLite) && c.Catalog.Path == "" {
		errs = append(errs, fmt.Sprintf("catalog.path: required when source is %s", c.Catalog.Source))
	}
	if c.Catalog.Freshness <= 0 {
		errs = append(errs, "catalog.freshness: must be positive")
	}
	if c.Catalog.RetryInterval < 0 {
		errs = append(errs, "catalog.retry_interval: must not be negative")
	}
	if c.Catalog.LoadTimeout <= 0 {
		errs = append(errs, "catalog.load_timeout: must be positive")
	}
	if c.Catalog.WarmInterval < 0 {
		errs = append(errs, "catalog.warm_interval: must not be negative")
	}

	// Remote validation
	if c.Remote.Enabled {
		u, err := url.Parse(c.Remote.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("remote.url: must be an http(s) URL, got %q", c.Remote.URL))
		}
		if c.Remote.Timeout <= 0 {
			errs = append(errs, "remote.timeout: must be positive")
		}
		if c.Remote.CacheTTL < 0 {
			errs = append(errs, "remote.cache_ttl: must not be negative")
		}
	}

	return errs
}
