package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "fuelplan.db"
	}
	if cfg.Database.Type == "postgres" {
		if cfg.Database.Host == "" {
			cfg.Database.Host = "localhost"
		}
		if cfg.Database.Port == 0 {
			cfg.Database.Port = 5432
		}
		if cfg.Database.User == "" {
			cfg.Database.User = "fuelplan"
		}
		if cfg.Database.Name == "" {
			cfg.Database.Name = "fuelplan"
		}
		if cfg.Database.SSLMode == "" {
			cfg.Database.SSLMode = "disable"
		}
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
	if cfg.Logging.Rotation.MaxSize == 0 {
		cfg.Logging.Rotation.MaxSize = 32 // MB
	}
	if cfg.Logging.Rotation.MaxBackups == 0 {
		cfg.Logging.Rotation.MaxBackups = 3
	}
	if cfg.Logging.Rotation.MaxAge == 0 {
		cfg.Logging.Rotation.MaxAge = 14 // days
	}

	// Dataset defaults
	if cfg.Dataset.Source == "" {
		cfg.Dataset.Source = "builtin"
	}
	if cfg.Dataset.CacheSize == 0 {
		cfg.Dataset.CacheSize = 16
	}
	if cfg.Dataset.Fetch.Timeout == 0 {
		cfg.Dataset.Fetch.Timeout = 15 * time.Second
	}
	if cfg.Dataset.Fetch.RateLimit.Requests == 0 {
		cfg.Dataset.Fetch.RateLimit.Requests = 2
	}
	if cfg.Dataset.Fetch.RateLimit.Burst == 0 {
		cfg.Dataset.Fetch.RateLimit.Burst = 2
	}
	if cfg.Dataset.Fetch.Retry.MaxAttempts == 0 {
		cfg.Dataset.Fetch.Retry.MaxAttempts = 3
	}
	if cfg.Dataset.Fetch.Retry.BackoffBase == 0 {
		cfg.Dataset.Fetch.Retry.BackoffBase = 500 * time.Millisecond
	}
	if cfg.Dataset.Fetch.CircuitBreaker.MaxFailures == 0 {
		cfg.Dataset.Fetch.CircuitBreaker.MaxFailures = 5
	}
	if cfg.Dataset.Fetch.CircuitBreaker.Timeout == 0 {
		cfg.Dataset.Fetch.CircuitBreaker.Timeout = time.Minute
	}

	// Server defaults
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15 * time.Second
	}
	if cfg.Server.RateLimit.Requests == 0 {
		cfg.Server.RateLimit.Requests = 20
	}
	if cfg.Server.RateLimit.Burst == 0 {
		cfg.Server.RateLimit.Burst = 40
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 1 << 20
	}

	// Metrics defaults
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
