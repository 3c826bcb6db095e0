package env

import (
	"errors"
	"results_feed/internal/config"

	"github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Addr string `env:"HTTP_ADDRESS" envDefault:":8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Addr) == 0 {
		return nil, errors.New("http address not found")
	}

	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.Addr
}
