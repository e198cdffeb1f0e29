package poh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

const (
	defaultFetchTimeout = 15 * time.Second
	defaultMaxRetries   = 3
	defaultBackoffBase  = 500 * time.Millisecond
	// Handbook documents are a few hundred kilobytes; anything far larger is
	// not a dataset.
	maxDocumentBytes = 8 << 20
)

// FetcherConfig tunes remote dataset downloads
type FetcherConfig struct {
	Timeout        time.Duration
	MaxRetries     int
	BackoffBase    time.Duration
	RequestsPerSec float64
	Burst          int
	MaxFailures    int
	OpenTimeout    time.Duration
}

// DefaultFetcherConfig returns the settings used when none are configured
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		Timeout:        defaultFetchTimeout,
		MaxRetries:     defaultMaxRetries,
		BackoffBase:    defaultBackoffBase,
		RequestsPerSec: 2,
		Burst:          2,
		MaxFailures:    5,
		OpenTimeout:    time.Minute,
	}
}

// HTTPFetcher downloads handbook documents published over http(s).
// Requests are rate limited, retried with exponential backoff and jitter,
// and guarded by a circuit breaker.
type HTTPFetcher struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	breaker     *CircuitBreaker
	maxRetries  int
	backoffBase time.Duration
	// Retry-After waits longer than this are cut down to it
	maxRetryAfter time.Duration
	clock         shared.Clock
}

// NewHTTPFetcher creates a fetcher. If clock is nil, uses RealClock
func NewHTTPFetcher(cfg FetcherConfig, clock shared.Clock) *HTTPFetcher {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	defaults := DefaultFetcherConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaults.BackoffBase
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = defaults.RequestsPerSec
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaults.Burst
	}
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = defaults.MaxFailures
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}

	return &HTTPFetcher{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.Burst),
		breaker:     NewCircuitBreaker(cfg.MaxFailures, cfg.OpenTimeout, clock),
		maxRetries:    cfg.MaxRetries,
		backoffBase:   cfg.BackoffBase,
		maxRetryAfter: cfg.OpenTimeout,
		clock:         clock,
	}
}

// Breaker exposes the circuit breaker for health reporting
func (f *HTTPFetcher) Breaker() *CircuitBreaker {
	return f.breaker
}

// Fetch downloads the document at url
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := f.breaker.Call(func() error {
		var err error
		body, err = f.fetchWithRetry(ctx, url)
		return err
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (f *HTTPFetcher) fetchWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if err := f.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, err := f.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}

		var retryable *retryableError
		if !errors.As(err, &retryable) {
			return nil, err
		}
		lastErr = err

		if attempt >= f.maxRetries {
			break
		}
		delay := addJitter(f.backoffBase * time.Duration(1<<attempt))
		if retryable.retryAfter > 0 {
			delay = retryable.retryAfter
			if f.maxRetryAfter > 0 && delay > f.maxRetryAfter {
				delay = f.maxRetryAfter
			}
		}
		if err := f.wait(ctx, delay); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// wait blocks for d or until ctx is done
func (f *HTTPFetcher) wait(ctx context.Context, d time.Duration) error {
	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	case <-f.clock.After(d):
		return nil
	}
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &retryableError{message: fmt.Sprintf("network error: %v", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		var retryAfter time.Duration
		if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
		return nil, &retryableError{message: "rate limited (429)", retryAfter: retryAfter}
	case resp.StatusCode >= 500:
		return nil, &retryableError{message: fmt.Sprintf("server error (%d)", resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) > maxDocumentBytes {
		return nil, fmt.Errorf("document exceeds %d bytes", maxDocumentBytes)
	}
	return body, nil
}

// retryableError represents a failure that should trigger a retry
type retryableError struct {
	message    string
	retryAfter time.Duration
}

func (e *retryableError) Error() string {
	return e.message
}

// addJitter spreads d by a factor between 0.5 and 1.5
func addJitter(d time.Duration) time.Duration {
	jitter := 0.5 + rand.Float64()
	return time.Duration(float64(d) * jitter)
}
