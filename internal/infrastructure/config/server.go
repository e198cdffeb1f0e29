package config

import "time"

// ServerConfig holds the HTTP API server configuration
type ServerConfig struct {
	// Listen address, e.g. ":8080"
	Address string `mapstructure:"address" validate:"required"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Compute endpoints are rate limited per server
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Maximum accepted request body in bytes
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"min=1024"`
}

// RateLimitConfig holds token bucket configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests float64 `mapstructure:"requests" validate:"gt=0"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
