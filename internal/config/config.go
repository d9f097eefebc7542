package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings read from the environment
type Config struct {
	DBPath   string `env:"POKERLOG_DB_PATH"`
	HTTPAddr string `env:"POKERLOG_HTTP_ADDR" envDefault:":3001"`
	Timezone string `env:"POKERLOG_TIMEZONE"`
	DBDebug  bool   `env:"POKERLOG_DB_DEBUG" envDefault:"false"`
}

// Load parses the environment and fills in defaults that depend on the host
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		path, err := defaultDBPath()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get database path: %w", err)
		}
		cfg.DBPath = path
	}

	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Location returns the timezone used for week and month buckets.
// Empty means the system local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid POKERLOG_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// defaultDBPath returns ~/.pokerlog/pokerlog.db
func defaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".pokerlog", "pokerlog.db"), nil
}
