package logger

import (
	"fmt"
	"results_feed/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New Создаёт структурированный логгер по настройкам уровня и формата.
// json - продакшен-конфигурация zap, console - dev-конфигурация.
func New(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level())
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level(), err)
	}

	var zapCfg zap.Config
	switch cfg.Format() {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format())
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}
