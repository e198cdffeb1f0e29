package poh_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/poh"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/config"
)

func writeDocument(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flightdata.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoader_Builtin(t *testing.T) {
	// Arrange
	loader := poh.NewLoader(nil)

	for _, source := range []string{"", "builtin", "  builtin  "} {
		// Act
		ds, err := loader.Load(context.Background(), source)

		// Assert
		require.NoError(t, err, "source %q", source)
		assert.NotEmpty(t, ds.CruisePerformance.DataByAltitude)
	}
}

func TestLoader_File(t *testing.T) {
	// Arrange
	path := writeDocument(t, minimalDocument)
	loader := poh.NewLoader(nil)

	// Act
	ds, err := loader.Load(context.Background(), path)

	// Assert
	require.NoError(t, err)
	assert.Len(t, ds.CruisePerformance.DataByAltitude, 1)
}

func TestLoader_MissingFileIsDatasetError(t *testing.T) {
	// Arrange
	loader := poh.NewLoader(nil)
	path := filepath.Join(t.TempDir(), "absent.json")

	// Act
	_, err := loader.Load(context.Background(), path)

	// Assert
	var dsErr *shared.DatasetError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, path, dsErr.Source)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_InvalidDocumentIsDatasetError(t *testing.T) {
	// Arrange
	path := writeDocument(t, `{"climbPerformance": {}}`)
	loader := poh.NewLoader(nil)

	// Act
	_, err := loader.Load(context.Background(), path)

	// Assert
	var dsErr *shared.DatasetError
	require.True(t, errors.As(err, &dsErr))
	var schemaErr *poh.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestLoader_RemoteDocument(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(minimalDocument))
	}))
	defer server.Close()

	fetcher := poh.NewHTTPFetcher(poh.DefaultFetcherConfig(), shared.NewMockClock(time.Time{}))
	loader := poh.NewLoader(fetcher)

	// Act
	ds, err := loader.Load(context.Background(), server.URL+"/flightdata.json")

	// Assert
	require.NoError(t, err)
	assert.Len(t, ds.CruisePerformance.DataByAltitude, 1)
}

type countingObserver struct {
	hits   int
	misses int
}

func (o *countingObserver) RecordDatasetCacheLookup(hit bool) {
	if hit {
		o.hits++
	} else {
		o.misses++
	}
}

func TestCachedLoader_ReusesParsedDataset(t *testing.T) {
	// Arrange
	path := writeDocument(t, minimalDocument)
	observer := &countingObserver{}
	cached := poh.NewCachedLoader(poh.NewLoader(nil), 4, 0).WithObserver(observer)

	// Act
	first, err := cached.Load(context.Background(), path)
	require.NoError(t, err)
	second, err := cached.Load(context.Background(), path)
	require.NoError(t, err)

	// Assert
	assert.Same(t, first, second)
	assert.Equal(t, 1, observer.hits)
	assert.Equal(t, 1, observer.misses)
	assert.Equal(t, 1, cached.Len())
}

func TestCachedLoader_ReloadsModifiedFile(t *testing.T) {
	// Arrange
	path := writeDocument(t, minimalDocument)
	cached := poh.NewCachedLoader(poh.NewLoader(nil), 4, 0)

	first, err := cached.Load(context.Background(), path)
	require.NoError(t, err)

	builtin := poh.BuiltinDocument()
	require.NoError(t, os.WriteFile(path, builtin, 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	// Act
	second, err := cached.Load(context.Background(), path)

	// Assert
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Len(t, second.CruisePerformance.DataByAltitude, 7)
}

func TestCachedLoader_DoesNotCacheFailures(t *testing.T) {
	// Arrange
	cached := poh.NewCachedLoader(poh.NewLoader(nil), 4, 0)
	path := filepath.Join(t.TempDir(), "absent.json")

	// Act
	_, err := cached.Load(context.Background(), path)

	// Assert
	require.Error(t, err)
	assert.Equal(t, 0, cached.Len())
}

func TestNewProvider_LoadsBuiltin(t *testing.T) {
	// Arrange
	cfg := config.DefaultConfig().Dataset
	provider := poh.NewProvider(cfg, nil, nil)

	// Act
	ds, err := provider.Load(context.Background(), cfg.Source)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, ds.CruisePerformance.DataByAltitude)
	assert.Equal(t, 1, provider.Len())
}

func TestFetcherConfigFrom(t *testing.T) {
	// Arrange
	cfg := config.DefaultConfig().Dataset.Fetch

	// Act
	fc := poh.FetcherConfigFrom(cfg)

	// Assert
	assert.Equal(t, cfg.Timeout, fc.Timeout)
	assert.Equal(t, cfg.Retry.MaxAttempts, fc.MaxRetries)
	assert.Equal(t, cfg.CircuitBreaker.MaxFailures, fc.MaxFailures)
}
