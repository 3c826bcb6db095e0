package env

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"results_feed/internal/config"
	"results_feed/internal/model"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	feedConfigPathEnvName = "FEED_CONFIG_PATH"

	defaultEndpoint = "http://localhost:54321/functions/v1/fetch-blaze-results"
	// Исходный клиент опрашивал источник каждые 50мс, быстрее любого сетевого запроса.
	// Здесь интервал в секундах и настраивается.
	defaultPollInterval = 3 * time.Second
	defaultFetchTimeout = 5 * time.Second
	defaultFallbackStep = time.Minute
)

// feedEnv Сырые значения: сначала YAML, поверх него переменные окружения
type feedEnv struct {
	Endpoint     string        `yaml:"endpoint" env:"FEED_ENDPOINT"`
	PollInterval time.Duration `yaml:"poll_interval" env:"FEED_POLL_INTERVAL"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"FEED_FETCH_TIMEOUT"`
	WindowSize   int           `yaml:"window_size" env:"FEED_WINDOW_SIZE"`
	FallbackStep time.Duration `yaml:"fallback_step" env:"FEED_FALLBACK_STEP"`
}

type feedConfig struct {
	endpoint     string
	pollInterval time.Duration
	fetchTimeout time.Duration
	windowSize   int
	fallbackStep time.Duration
}

// NewFeedConfig Читает настройки ленты. Путь к YAML берётся из FEED_CONFIG_PATH (необязательно).
func NewFeedConfig() (config.FeedConfig, error) {
	return NewFeedConfigFromYAML(os.Getenv(feedConfigPathEnvName))
}

// NewFeedConfigFromYAML Порядок приоритета: значения по умолчанию < YAML < окружение
func NewFeedConfigFromYAML(path string) (config.FeedConfig, error) {
	var raw feedEnv

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read feed config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse feed config %q: %w", path, err)
		}
	}

	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse feed env: %w", err)
	}

	applyFeedDefaults(&raw)

	if err := validateFeed(raw); err != nil {
		return nil, err
	}

	return &feedConfig{
		endpoint:     raw.Endpoint,
		pollInterval: raw.PollInterval,
		fetchTimeout: raw.FetchTimeout,
		windowSize:   raw.WindowSize,
		fallbackStep: raw.FallbackStep,
	}, nil
}

func applyFeedDefaults(raw *feedEnv) {
	if raw.Endpoint == "" {
		raw.Endpoint = defaultEndpoint
	}
	if raw.PollInterval == 0 {
		raw.PollInterval = defaultPollInterval
	}
	if raw.FetchTimeout == 0 {
		raw.FetchTimeout = defaultFetchTimeout
	}
	if raw.WindowSize == 0 {
		raw.WindowSize = model.MaxWindow
	}
	if raw.FallbackStep == 0 {
		raw.FallbackStep = defaultFallbackStep
	}
}

func validateFeed(raw feedEnv) error {
	var errs []error

	u, err := url.Parse(raw.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("feed endpoint must be an absolute http(s) url, got %q", raw.Endpoint))
	}
	if raw.PollInterval < 0 {
		errs = append(errs, fmt.Errorf("feed poll interval must be positive, got %s", raw.PollInterval))
	}
	if raw.FetchTimeout < 0 {
		errs = append(errs, fmt.Errorf("feed fetch timeout must be positive, got %s", raw.FetchTimeout))
	}
	if raw.WindowSize < 1 || raw.WindowSize > model.MaxWindow {
		errs = append(errs, fmt.Errorf("feed window size must be 1-%d, got %d", model.MaxWindow, raw.WindowSize))
	}
	if raw.FallbackStep < 0 {
		errs = append(errs, fmt.Errorf("feed fallback step must be positive, got %s", raw.FallbackStep))
	}

	return errors.Join(errs...)
}

func (f *feedConfig) Endpoint() string {
	return f.endpoint
}

func (f *feedConfig) PollInterval() time.Duration {
	return f.pollInterval
}

func (f *feedConfig) FetchTimeout() time.Duration {
	return f.fetchTimeout
}

func (f *feedConfig) WindowSize() int {
	return f.windowSize
}

func (f *feedConfig) FallbackStep() time.Duration {
	return f.fallbackStep
}
