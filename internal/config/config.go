// Package config loads CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/u8tbl"
)

// ErrInvalidConfig is returned for files that cannot be parsed or that name
// an unknown style.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings a user can persist between runs.
type Config struct {
	// Style is a style name accepted by u8tbl.ParseStyle. Empty means unset.
	Style string `yaml:"style"`
	// Delimiter splits input lines into cells. Nil means unset, which lets
	// an explicit empty delimiter be configured.
	Delimiter *string `yaml:"delimiter"`
}

// DefaultPath returns $XDG_CONFIG_HOME/u8tbl/config.yaml or its platform
// equivalent. It returns "" when no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "u8tbl", "config.yaml")
}

// Load reads the config at path. A missing file is not an error when
// required is false; the zero Config is returned instead.
func Load(path string, required bool) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a YAML config from r and validates it.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if cfg.Style != "" {
		if _, err := u8tbl.ParseStyle(cfg.Style); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return cfg, nil
}
