package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	SessionSecret string `env:"SESSION_SECRET, default=hotel-louvain-secret"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://127.0.0.1:27017"`
	Database string `env:"MONGO_DB,  default=hotel_louvain"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig controls the per-IP limiter on the login and registration
// endpoints.
type RateLimitConfig struct {
	Enabled bool          `env:"RATE_LIMIT_ENABLED, default=true"`
	Limit   int           `env:"RATE_LIMIT_MAX,     default=20"`
	Window  time.Duration `env:"RATE_LIMIT_WINDOW,  default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// DatabaseName returns the Mongo database to use. The test environment gets
// its own database so test runs never touch real bookings.
func (c *Config) DatabaseName() string {
	if c.Env == "test" {
		return c.Mongo.Database + "_test"
	}
	return c.Mongo.Database
}
