package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-iconcss/internal/fileutil"
	"github.com/alnah/go-iconcss/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPrefixLength         = 32
	MaxCustomPropertyLength = 64
	MaxPathLength           = 4096
	MaxPropertyNameLength   = 64
	MaxPropertyValueLength  = 512
	MaxExtraProperties      = 32
	MaxWorkers              = 64
	MaxScale                = 100
)

// configDirName is the directory under the user config dir searched by name.
const configDirName = "go-iconcss"

// Config holds all configuration for the iconcss command.
type Config struct {
	Icons       IconsConfig       `yaml:"icons"`
	Collections CollectionsConfig `yaml:"collections"`
	Output      OutputConfig      `yaml:"output"`
}

// IconsConfig defines how references resolve to CSS.
type IconsConfig struct {
	Prefix          string            `yaml:"prefix"`          // Class name prefix (empty = "i-")
	Scale           float64           `yaml:"scale"`           // Size in em (0 = 1)
	Mode            string            `yaml:"mode"`            // "auto", "mask", "background-img"
	CustomProperty  string            `yaml:"customProperty"`  // Mask URL property (empty = "--un-icon")
	ExtraProperties map[string]string `yaml:"extraProperties"` // Added to every rule
}

// CollectionsConfig defines where collections come from.
type CollectionsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = bundled collections only
	Lenient  bool   `yaml:"lenient"`  // Treat broken collections as missing
}

// OutputConfig defines CLI output options.
type OutputConfig struct {
	Color       string `yaml:"color"`       // "auto", "always", "never" (default: "auto")
	Workers     int    `yaml:"workers"`     // 0 = auto
	SkipMissing bool   `yaml:"skipMissing"` // Unresolved classes do not fail the run
}

// Validate checks field lengths and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("icons.prefix", c.Icons.Prefix, MaxPrefixLength); err != nil {
		return err
	}
	if err := validateFieldLength("icons.customProperty", c.Icons.CustomProperty, MaxCustomPropertyLength); err != nil {
		return err
	}
	if c.Icons.CustomProperty != "" && !strings.HasPrefix(c.Icons.CustomProperty, "--") {
		return fmt.Errorf("%w: icons.customProperty: %q must start with --", ErrInvalidValue, c.Icons.CustomProperty)
	}
	if math.IsNaN(c.Icons.Scale) || c.Icons.Scale < 0 || c.Icons.Scale > MaxScale {
		return fmt.Errorf("%w: icons.scale: must be between 0 and %d, got %v", ErrInvalidValue, MaxScale, c.Icons.Scale)
	}
	if c.Icons.Mode != "" {
		switch strings.ToLower(c.Icons.Mode) {
		case "auto", "mask", "background-img":
			// valid
		default:
			return fmt.Errorf("%w: icons.mode: %q (must be auto, mask, or background-img)", ErrInvalidValue, c.Icons.Mode)
		}
	}

	if len(c.Icons.ExtraProperties) > MaxExtraProperties {
		return fmt.Errorf("%w: icons.extraProperties: %d entries (max %d)",
			ErrInvalidValue, len(c.Icons.ExtraProperties), MaxExtraProperties)
	}
	for name, value := range c.Icons.ExtraProperties {
		field := "icons.extraProperties." + name
		if err := validateFieldLength(field, name, MaxPropertyNameLength); err != nil {
			return err
		}
		if err := validateFieldLength(field, value, MaxPropertyValueLength); err != nil {
			return err
		}
		if name == "" || strings.ContainsAny(name, " \t\r\n:;{}") {
			return fmt.Errorf("%w: %s: invalid property name", ErrInvalidValue, field)
		}
		if strings.ContainsAny(value, ";{}") {
			return fmt.Errorf("%w: %s: value must not contain ; { or }", ErrInvalidValue, field)
		}
	}

	if err := validateFieldLength("collections.basePath", c.Collections.BasePath, MaxPathLength); err != nil {
		return err
	}

	if c.Output.Color != "" {
		switch strings.ToLower(c.Output.Color) {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("%w: output.color: %q (must be auto, always, or never)", ErrInvalidValue, c.Output.Color)
		}
	}
	if c.Output.Workers < 0 || c.Output.Workers > MaxWorkers {
		return fmt.Errorf("%w: output.workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Output.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that keeps every library default.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Color: "auto"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations:
// the current directory, then ~/.config/go-iconcss/.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
