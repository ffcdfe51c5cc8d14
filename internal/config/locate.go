package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvPath names the environment variable that pins the config file.
const EnvPath = "MARQUEE_CONFIG"

// ErrNoConfig is returned by Locate when no candidate file exists.
var ErrNoConfig = errors.New("no config file found")

// DefaultPath is where config init writes and the per-user search entry.
// It follows XDG_CONFIG_HOME, then ~/.config.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "marquee", "config.toml")
}

// SearchPaths lists the candidate files Locate tries, most local first.
func SearchPaths() []string {
	return []string{
		"config.toml",
		DefaultPath(),
		filepath.Join("/etc", "marquee", "config.toml"),
	}
}

// Locate picks the config file to load. An explicit path is returned as is
// and left for Load to report on. A path in MARQUEE_CONFIG must exist.
// Otherwise the first existing SearchPaths entry wins; when none exists the
// error wraps ErrNoConfig.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if pinned := os.Getenv(EnvPath); pinned != "" {
		if _, err := os.Stat(pinned); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvPath, pinned, err)
		}
		return pinned, nil
	}

	candidates := SearchPaths()
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w (looked in %s)", ErrNoConfig, strings.Join(candidates, ", "))
}
