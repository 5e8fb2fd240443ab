// Package config reads the service settings from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Port           string        `default:"8080"`
	LogLevel       string        `default:"info" split_words:"true"`
	LogFormat      string        `default:"json" split_words:"true"`
	LogFile        string        `default:"" split_words:"true"`
	LogMaxSizeMB   int           `default:"100" envconfig:"LOG_MAX_SIZE_MB"`
	LogMaxBackups  int           `default:"5" split_words:"true"`
	SessionTTL     time.Duration `default:"30m" envconfig:"SESSION_TTL"`
	SessionCacheMB int           `default:"64" envconfig:"SESSION_CACHE_MB"`
}

// Load reads the configuration from unprefixed environment variables.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	if c.SessionTTL <= 0 {
		return Config{}, errors.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return c, nil
}
