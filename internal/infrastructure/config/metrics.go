package config

// MetricsConfig holds Prometheus metrics configuration
type MetricsConfig struct {
	// Enabled controls whether planner metrics are collected and exposed
	Enabled bool `mapstructure:"enabled"`

	// Path the API server exposes metrics on (default: /metrics)
	Path string `mapstructure:"path" validate:"omitempty,startswith=/"`
}
