package logging

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config controls the process-wide logger.
type Config struct {
	Level     string
	Timestamp bool
	NoColor   bool
}

func Default() Config {
	return Config{Level: "info", Timestamp: true}
}

// envOverrides mirrors Config with pointer fields so unset variables leave
// the configured values alone.
type envOverrides struct {
	Level     *string `env:"SLPCHECK_LOG_LEVEL"`
	Timestamp *bool   `env:"SLPCHECK_LOG_TIMESTAMP"`
	NoColor   *bool   `env:"SLPCHECK_LOG_NOCOLOR"`
}

// FromEnv layers environment overrides onto cfg.
func FromEnv(cfg Config) (Config, error) {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return cfg, err
	}
	if o.Level != nil {
		cfg.Level = *o.Level
	}
	if o.Timestamp != nil {
		cfg.Timestamp = *o.Timestamp
	}
	if o.NoColor != nil {
		cfg.NoColor = *o.NoColor
	}
	return cfg, nil
}

// ParseLevel maps a config string to a zerolog level. Unknown values fall
// back to info.
func ParseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace", "diagnostics":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
