package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the client settings, read from the environment.
type Config struct {
	APIBaseURL    string        `env:"ZENTROPY_API_URL" envDefault:"http://localhost:8000"`
	HTTPTimeout   time.Duration `env:"ZENTROPY_HTTP_TIMEOUT" envDefault:"30s"`
	RedisAddr     string        `env:"ZENTROPY_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"ZENTROPY_REDIS_PASSWORD"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
