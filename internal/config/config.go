// Package config loads registry settings from an optional TOML file
// with environment overrides. Env always wins over the file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all runtime settings for the registry process.
type Config struct {
	Addr     string `toml:"addr"`
	DB       string `toml:"db"`
	LogLevel string `toml:"log_level"`
}

// Default returns the baseline configuration before file and env
// overrides are applied.
func Default() Config {
	return Config{
		Addr:     ":8030",
		DB:       "solace.db",
		LogLevel: "info",
	}
}

// Load reads the TOML file at path when it exists, then applies env
// overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file; defaults plus env apply.
		case err != nil:
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SOLACE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SOLACE_DB"); v != "" {
		cfg.DB = v
	}
	if v := os.Getenv("SOLACE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate rejects configurations that cannot start a server.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("config missing addr")
	}
	if strings.TrimSpace(cfg.DB) == "" {
		return fmt.Errorf("config missing db")
	}
	return nil
}
