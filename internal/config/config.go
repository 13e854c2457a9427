// Package config stores the command-line defaults for rendering dates.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/TorbenJakobsen/decimaldate"
	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"
)

// Output formats.
const (
	FormatCompact   = "compact"
	FormatSeparated = "separated"
	FormatISO       = "iso"
)

// Keys accepted by Get and Set.
const (
	KeySeparator = "separator"
	KeyFormat    = "format"
)

var (
	formats = []string{FormatCompact, FormatSeparated, FormatISO}
	keys    = []string{KeySeparator, KeyFormat}
)

// Config holds the rendering defaults. Environment variables override
// values read from disk.
type Config struct {
	Separator string `json:"separator" env:"DECIMALDATE_SEPARATOR"`
	Format    string `json:"format" env:"DECIMALDATE_FORMAT"`
}

// Default returns the configuration used when nothing is stored.
func Default() Config {
	return Config{Separator: "-", Format: FormatCompact}
}

// Dir returns the decimaldate config directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".decimaldate")
}

// Path returns the path to config.json.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.json")
}

// Read reads the stored configuration and applies environment overrides.
// Returns defaults if the file does not exist. Comments and trailing commas
// are allowed in the file.
func Read(homeDir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(homeDir))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", Path(homeDir), err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write writes the configuration, creating the directory if needed.
func Write(homeDir string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(homeDir), data, 0644)
}

// Reset removes the stored configuration. Removing a missing file is not an error.
func Reset(homeDir string) error {
	err := os.Remove(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Validate rejects unknown output formats.
func (c Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("invalid format %q (valid: %s)", c.Format, strings.Join(formats, ", "))
	}
	return nil
}

// Keys returns the settable configuration keys.
func Keys() []string {
	return slices.Clone(keys)
}

// Get returns the value stored under key.
func (c Config) Get(key string) (string, error) {
	switch key {
	case KeySeparator:
		return c.Separator, nil
	case KeyFormat:
		return c.Format, nil
	}
	return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(keys, ", "))
}

// Set returns a copy of c with key set to value.
func (c Config) Set(key, value string) (Config, error) {
	switch key {
	case KeySeparator:
		c.Separator = value
	case KeyFormat:
		c.Format = strings.ToLower(value)
	default:
		return c, fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(keys, ", "))
	}
	return c, c.Validate()
}

// Render formats d according to the configuration.
func (c Config) Render(d decimaldate.DecimalDate) string {
	switch c.Format {
	case FormatISO:
		return d.ISOFormat()
	case FormatSeparated:
		return d.Format(c.Separator)
	}
	return d.String()
}
