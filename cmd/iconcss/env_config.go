package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-iconcss/internal/config"
)

// envPrefix is shared by every environment variable the CLI reads.
const envPrefix = "ICONCSS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string  `env:"CONFIG"`      // ICONCSS_CONFIG: config file name or path
	Prefix      string  `env:"PREFIX"`      // ICONCSS_PREFIX: class name prefix
	Scale       float64 `env:"SCALE"`       // ICONCSS_SCALE: icon size in em
	Mode        string  `env:"MODE"`        // ICONCSS_MODE: auto, mask, background-img
	Collections string  `env:"COLLECTIONS"` // ICONCSS_COLLECTIONS: collections directory
	Lenient     bool    `env:"LENIENT"`     // ICONCSS_LENIENT: treat broken collections as missing
	Workers     int     `env:"WORKERS"`     // ICONCSS_WORKERS: parallel workers
	Color       string  `env:"COLOR"`       // ICONCSS_COLOR: auto, always, never
}

// knownEnvVars lists valid ICONCSS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"ICONCSS_CONFIG":      true,
	"ICONCSS_PREFIX":      true,
	"ICONCSS_SCALE":       true,
	"ICONCSS_MODE":        true,
	"ICONCSS_COLLECTIONS": true,
	"ICONCSS_LENIENT":     true,
	"ICONCSS_WORKERS":     true,
	"ICONCSS_COLOR":       true,
}

// loadEnvConfig reads ICONCSS_* values from environ ("KEY=value" pairs).
// Returns ErrInvalidEnv when a value cannot be parsed (e.g. ICONCSS_SCALE=big).
func loadEnvConfig(environ []string) (*envConfig, error) {
	var cfg envConfig
	opts := env.Options{
		Prefix:      envPrefix,
		Environment: environMap(environ),
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	return &cfg, nil
}

// environMap converts "KEY=value" pairs to a map. Later pairs win.
func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

// warnUnknownEnvVars logs warnings for unrecognized ICONCSS_* variables.
// Helps catch typos like ICONCSS_COLLECTION instead of ICONCSS_COLLECTIONS.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	if e.Prefix != "" {
		cfg.Icons.Prefix = e.Prefix
	}
	if e.Scale != 0 {
		cfg.Icons.Scale = e.Scale
	}
	if e.Mode != "" {
		cfg.Icons.Mode = e.Mode
	}
	if e.Collections != "" {
		cfg.Collections.BasePath = e.Collections
	}
	if e.Lenient {
		cfg.Collections.Lenient = true
	}
	if e.Workers != 0 {
		cfg.Output.Workers = e.Workers
	}
	if e.Color != "" {
		cfg.Output.Color = e.Color
	}
}
