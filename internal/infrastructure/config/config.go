package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/fuelplan")
	}

	// FP_DATABASE_PATH, FP_PLANNER_RESERVE_MINUTES, ...
	v.SetEnvPrefix("FP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	// Booleans cannot be defaulted after Unmarshal, since false is a valid choice
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("metrics.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we'll use env vars and defaults
	}

	// DATABASE_URL is honoured without the FP_ prefix, as hosting platforms set it
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
		if v.GetString("database.type") == "" {
			v.Set("database.type", "postgres")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// AutomaticEnv only affects keys viper already knows about, so Unmarshal
// would miss env-only settings without these bindings.
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"database.type", "database.url", "database.path", "database.host", "database.port",
		"database.user", "database.password", "database.name", "database.sslmode",
		"logging.level", "logging.format", "logging.output", "logging.file_path",
		"planner.taxi_fuel_gal", "planner.reserve_minutes", "planner.reserve_fuel_gal",
		"planner.climb_allowance_gph", "planner.default_cruise_ktas", "planner.climb_mode",
		"planner.cruise_rpm", "planner.cruise_manifold_inhg", "planner.temp_band",
		"planner.starting_fuel_gal", "planner.fuel_units", "planner.holding_percent",
		"planner.contingency_percent", "planner.holding_minutes",
		"dataset.source", "dataset.cache_size", "dataset.cache_ttl", "dataset.fetch.timeout",
		"server.address", "server.rate_limit.requests", "server.rate_limit.burst",
		"metrics.enabled", "metrics.path",
	} {
		_ = v.BindEnv(key)
	}
}

// LoadConfigOrDefault loads configuration or returns a default config on error
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns a configuration with every default applied
func DefaultConfig() *Config {
	cfg := &Config{
		Database: DatabaseConfig{AutoMigrate: true},
		Metrics:  MetricsConfig{Enabled: true},
	}
	SetDefaults(cfg)
	return cfg
}

// MustLoadConfig loads configuration and panics on error (for use in main.go)
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
