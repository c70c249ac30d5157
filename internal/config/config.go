// Package config loads process configuration by layering defaults, an
// optional YAML file, and QB_* environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lszabadkai/quarterback/internal/domain"
)

// Config contains process configuration.
type Config struct {
	// DBPath locates the SQLite database file.
	DBPath string `koanf:"db_path"`

	// DefaultPeriod is the quarter the board opens on; empty means the
	// current quarter.
	DefaultPeriod string `koanf:"default_period"`

	// DefaultView is the initial view mode: quarter, month, 6weeks, 2weeks.
	DefaultView string `koanf:"default_view"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		DBPath:      defaultDBPath(),
		DefaultView: string(domain.ViewQuarter),
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if QB_CONFIG is set
//  3. env (prefix QB_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("QB_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: QB_DB_PATH, QB_DEFAULT_VIEW, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("QB_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "qb_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		return nil, errors.New("db_path must not be empty")
	}
	if !domain.ValidViewModes[cfg.DefaultView] {
		return nil, errors.New("default_view must be one of quarter, month, 6weeks, 2weeks")
	}
	return &cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "quarterback.db"
	}
	return filepath.Join(home, ".quarterback", "quarterback.db")
}
