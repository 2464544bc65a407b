package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration, loaded from the environment.
type Config struct {
	Port             int           `env:"PORT" envDefault:"8080"`
	ResyncInterval   time.Duration `env:"RESYNC_INTERVAL" envDefault:"30s"`
	ReconnectBackoff time.Duration `env:"RECONNECT_BACKOFF" envDefault:"3s"`
	FeedBuffer       int           `env:"FEED_BUFFER" envDefault:"64"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
