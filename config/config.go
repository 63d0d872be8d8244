package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// LogLevel is any level logrus can parse
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Server struct {
		Port int `env:"PORT" envDefault:"5250"`

		// Origins allowed by the CORS middleware, comma separated
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

		// How long in-flight requests get to finish on shutdown
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	}

	Auth struct {
		// HMAC key for session tokens
		JWTSecret string `env:"JWT_SECRET,required"`

		TokenExpiryHours int `env:"JWT_EXPIRY_HOURS" envDefault:"24"`
	}

	Seed struct {
		Enabled bool `env:"SEED_ENABLED" envDefault:"true"`

		// Catalog file to load; empty uses the built-in sample catalog
		Path string `env:"SEED_PATH"`
	}

	Archive struct {
		// SQLite file for the activity archive
		Path string `env:"ARCHIVE_PATH" envDefault:":memory:"`
	}

	// BatchProcessing configuration
	BatchProcessing struct {
		// Maximum number of events to accumulate before archiving
		MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"100"`

		// Maximum time to wait before archiving a non-full batch (in seconds)
		MaxBatchWaitTime int `env:"BATCH_WAIT_TIME" envDefault:"30"`

		// Capacity of the event queue, in batches
		QueueSize int `env:"BATCH_QUEUE_SIZE" envDefault:"64"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TokenExpiry is the lifetime of an issued session token
func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.Auth.TokenExpiryHours) * time.Hour
}
