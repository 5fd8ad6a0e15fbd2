// Package config loads the optional knightpaths.yml file. Every value has a
// working default so the tool runs with no config at all; whatever is loaded
// gets passed down explicitly, there is no package-level state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config collects the knobs of the CLI and the server.
type Config struct {
	// Output is the base name (without extension) for generated files.
	Output string `yaml:"output"`
	// Port is the HTTP port of the serve command.
	Port int `yaml:"port"`
	// AllowedOrigin is echoed in CORS headers by the server.
	AllowedOrigin string `yaml:"allowed_origin"`
	// RedisAddr enables the result cache when non-empty, e.g. "localhost:6379".
	RedisAddr string `yaml:"redis_addr,omitempty"`
	// CacheTTLMinutes bounds the lifetime of cached results (0 = no expiry).
	CacheTTLMinutes int `yaml:"cache_ttl_minutes,omitempty"`
	// HistoryPath enables the sqlite search history when non-empty.
	HistoryPath string `yaml:"history_path,omitempty"`
	// Verbose turns on debug output and the algorithm comparison printout.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output:        "paths",
		Port:          8080,
		AllowedOrigin: "http://localhost:3000",
	}
}

// Load reads a yaml config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.Output == "" {
		return cfg, fmt.Errorf("output base name must not be empty")
	}
	return cfg, nil
}
