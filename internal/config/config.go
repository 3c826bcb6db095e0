package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type FeedConfig interface {
	Endpoint() string
	PollInterval() time.Duration
	FetchTimeout() time.Duration
	WindowSize() int
	FallbackStep() time.Duration
}

type HTTPConfig interface {
	Address() string
}

type LoggerConfig interface {
	Level() string
	Format() string
}
