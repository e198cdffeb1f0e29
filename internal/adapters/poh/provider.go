package poh

import (
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/config"
)

// FetcherConfigFrom maps the dataset fetch configuration onto fetcher settings
func FetcherConfigFrom(cfg config.FetchConfig) FetcherConfig {
	return FetcherConfig{
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.Retry.MaxAttempts,
		BackoffBase:    cfg.Retry.BackoffBase,
		RequestsPerSec: cfg.RateLimit.Requests,
		Burst:          cfg.RateLimit.Burst,
		MaxFailures:    cfg.CircuitBreaker.MaxFailures,
		OpenTimeout:    cfg.CircuitBreaker.Timeout,
	}
}

// NewProvider builds the cached dataset loader described by cfg. observer
// may be nil.
func NewProvider(cfg config.DatasetConfig, observer CacheObserver, clock shared.Clock) *CachedLoader {
	fetcher := NewHTTPFetcher(FetcherConfigFrom(cfg.Fetch), clock)
	loader := NewCachedLoader(NewLoader(fetcher), cfg.CacheSize, cfg.CacheTTL)
	if observer != nil {
		loader.WithObserver(observer)
	}
	return loader
}
