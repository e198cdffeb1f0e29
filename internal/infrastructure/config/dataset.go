package config

import "time"

// DatasetConfig controls where the handbook performance data comes from
type DatasetConfig struct {
	// "builtin" (embedded C182S tables), a file path or an http(s) URL
	Source string `mapstructure:"source" validate:"dataset_source"`

	// Sources API requests may name in place of Source. Empty means API
	// requests always use Source. The CLI --dataset flag is not restricted.
	AllowedSources []string `mapstructure:"allowed_sources" validate:"dive,dataset_source"`

	// Number of parsed datasets kept in memory
	CacheSize int `mapstructure:"cache_size" validate:"min=1"`

	// How long a cached dataset stays valid; 0 keeps it until evicted
	CacheTTL time.Duration `mapstructure:"cache_ttl" validate:"min=0"`

	// Remote download settings
	Fetch FetchConfig `mapstructure:"fetch"`
}

// FetchConfig tunes downloads of remote datasets
type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	Retry RetryConfig `mapstructure:"retry"`

	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// RetryConfig holds retry configuration for failed downloads
type RetryConfig struct {
	// Maximum number of retry attempts
	MaxAttempts int `mapstructure:"max_attempts" validate:"min=0"`

	// Base duration for exponential backoff
	BackoffBase time.Duration `mapstructure:"backoff_base"`
}

// CircuitBreakerConfig holds circuit breaker thresholds
type CircuitBreakerConfig struct {
	// Consecutive failures before the circuit opens
	MaxFailures int `mapstructure:"max_failures" validate:"min=1"`

	// How long the circuit stays open before probing again
	Timeout time.Duration `mapstructure:"timeout"`
}
