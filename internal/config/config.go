// Package config loads tool configuration from a TOML file.
//
// All fields have working defaults; a missing file is not an error. CLI
// flags override file values, so loading happens before flag binding.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ramisn26/AI-Architect/pkg/calc"
	"github.com/ramisn26/AI-Architect/pkg/design"
	"github.com/ramisn26/AI-Architect/pkg/errors"
)

// Config is the full tool configuration.
type Config struct {
	// Store selects the persistence backend: memory, file, sqlite, mongo.
	Store StoreConfig `toml:"store"`

	// Cache selects the cache backend: none, file, redis.
	Cache CacheConfig `toml:"cache"`

	// Server configures the HTTP API.
	Server ServerConfig `toml:"server"`

	// CostRates overrides construction rates per building type, in INR
	// per sq.ft. Unlisted types keep their defaults.
	CostRates map[string]float64 `toml:"cost_rates"`
}

// StoreConfig selects and parameterizes the design store.
type StoreConfig struct {
	Backend string `toml:"backend"`
	// Path is the directory (file backend) or database file (sqlite).
	Path string `toml:"path"`
	// URI and Database apply to the mongo backend.
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// CacheConfig selects and parameterizes the cache.
type CacheConfig struct {
	Backend string `toml:"backend"`
	// Dir is the file cache directory.
	Dir string `toml:"dir"`
	// Addr is the redis address.
	Addr string `toml:"addr"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Store:  StoreConfig{Backend: "file"},
		Cache:  CacheConfig{Backend: "none"},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// DefaultPath returns the standard config file location,
// ~/.config/aiarchitect/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aiarchitect", "config.toml")
}

// Load reads the config file at path, applying defaults for everything the
// file does not set. A missing file returns the defaults; a malformed one
// is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config file")
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config file")
	}
	return cfg, nil
}

// Rates converts the configured rate overrides to a calc rate table.
// Returns nil when nothing is overridden, which selects the defaults.
func (c *Config) Rates() calc.CostRates {
	if len(c.CostRates) == 0 {
		return nil
	}
	rates := calc.DefaultCostRates()
	for name, rate := range c.CostRates {
		rates[design.BuildingType(name)] = rate
	}
	return rates
}
