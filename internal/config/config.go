// Package config resolves runtime configuration for the slpcheck binaries.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/danmuck/slpcheck/internal/logging"
)

// Config is the resolved runtime configuration. Layers apply in order:
// defaults, config file, environment, flags.
type Config struct {
	Logging logging.Config
	Workers int
	Report  string
}

func Default() Config {
	return Config{
		Logging: logging.Default(),
		Workers: 4,
	}
}

type fileConfig struct {
	LogLevel     string `toml:"log_level"`
	LogTimestamp bool   `toml:"log_timestamp"`
	LogNoColor   bool   `toml:"log_nocolor"`
	Workers      int    `toml:"workers"`
	Report       string `toml:"report"`
}

type envConfig struct {
	Workers *int    `env:"SLPCHECK_WORKERS"`
	Report  *string `env:"SLPCHECK_REPORT"`
}

// Load resolves the file and environment layers. An empty path skips the
// file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if meta.IsDefined("log_level") {
			cfg.Logging.Level = strings.TrimSpace(raw.LogLevel)
		}
		if meta.IsDefined("log_timestamp") {
			cfg.Logging.Timestamp = raw.LogTimestamp
		}
		if meta.IsDefined("log_nocolor") {
			cfg.Logging.NoColor = raw.LogNoColor
		}
		if meta.IsDefined("workers") {
			cfg.Workers = raw.Workers
		}
		if meta.IsDefined("report") {
			cfg.Report = strings.TrimSpace(raw.Report)
		}
	}

	var overrides envConfig
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if overrides.Workers != nil {
		cfg.Workers = *overrides.Workers
	}
	if overrides.Report != nil {
		cfg.Report = *overrides.Report
	}

	var err error
	cfg.Logging, err = logging.FromEnv(cfg.Logging)
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	return cfg, nil
}
