package env

import (
	"fmt"
	"results_feed/internal/config"

	"github.com/caarlos0/env/v11"
)

type loggerConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	var cfg loggerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse logger env: %w", err)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("log level must be one of [debug, info, warn, error], got %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return nil, fmt.Errorf("log format must be one of [json, console], got %q", cfg.LogFormat)
	}

	return &cfg, nil
}

func (cfg *loggerConfig) Level() string {
	return cfg.LogLevel
}

func (cfg *loggerConfig) Format() string {
	return cfg.LogFormat
}
