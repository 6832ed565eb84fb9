package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	atterr "github.com/KirkDiggler/attribute-engine/internal/errors"
)

// StoreKind selects the backing store for scoped data and projectiles
type StoreKind string

const (
	StoreMemory StoreKind = "memory"
	StoreRedis  StoreKind = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Store StoreKind   `env:"ATTRIBUTE_STORE" envDefault:"memory"`
	Redis RedisConfig `envPrefix:"REDIS_"`

	// ProjectileTTL bounds how long a Redis projectile attachment survives
	ProjectileTTL time.Duration `env:"ATTRIBUTE_PROJECTILE_TTL" envDefault:"1m"`

	// RefreshConcurrency caps parallel recomputation during bulk refresh
	RefreshConcurrency int `env:"ATTRIBUTE_REFRESH_CONCURRENCY" envDefault:"8"`

	// SlotsFile optionally points at YAML slot definitions
	SlotsFile string `env:"ATTRIBUTE_SLOTS_FILE"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL      string `env:"URL"`
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Options builds client options. URL takes precedence over the discrete fields.
func (c RedisConfig) Options() (*redis.Options, error) {
	if c.URL != "" {
		opts, err := redis.ParseURL(c.URL)
		if err != nil {
			return nil, atterr.WrapWithCode(err, atterr.CodeConfiguration, "invalid REDIS_URL")
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom loads configuration from the given variables instead of the
// process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, atterr.WrapWithCode(err, atterr.CodeConfiguration, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges env parsing cannot express
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis:
	default:
		return atterr.Configurationf("unknown ATTRIBUTE_STORE %q", c.Store).
			WithMeta("store", string(c.Store))
	}

	if c.ProjectileTTL <= 0 {
		return atterr.Configuration("ATTRIBUTE_PROJECTILE_TTL must be positive")
	}
	if c.RefreshConcurrency < 1 {
		return atterr.Configuration("ATTRIBUTE_REFRESH_CONCURRENCY must be at least 1")
	}

	return nil
}
