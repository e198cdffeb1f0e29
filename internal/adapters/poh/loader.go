package poh

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// BuiltinSource names the C182S dataset compiled into the binary. An empty
// source means the same thing.
const BuiltinSource = "builtin"

//go:embed data/c182s.json
var builtinDocument []byte

// BuiltinDocument returns a copy of the embedded handbook document
func BuiltinDocument() []byte {
	out := make([]byte, len(builtinDocument))
	copy(out, builtinDocument)
	return out
}

// IsBuiltin reports whether source selects the embedded dataset
func IsBuiltin(source string) bool {
	s := strings.TrimSpace(source)
	return s == "" || s == BuiltinSource
}

// IsRemote reports whether source is an http(s) URL
func IsRemote(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Loader reads handbook documents from the embedded default, a local file or
// an http(s) URL and validates them into a performance.Dataset
type Loader struct {
	fetcher *HTTPFetcher
}

// NewLoader creates a loader. If fetcher is nil, remote sources use a
// fetcher with default settings.
func NewLoader(fetcher *HTTPFetcher) *Loader {
	if fetcher == nil {
		fetcher = NewHTTPFetcher(DefaultFetcherConfig(), nil)
	}
	return &Loader{fetcher: fetcher}
}

// Load reads and validates the dataset named by source. Failures are
// reported as *shared.DatasetError.
func (l *Loader) Load(ctx context.Context, source string) (*performance.Dataset, error) {
	logger := common.LoggerFromContext(ctx)

	data, err := l.Read(ctx, source)
	if err != nil {
		logger.Log("ERROR", "performance dataset unreadable", map[string]interface{}{
			"source": describeSource(source),
			"error":  err.Error(),
		})
		return nil, shared.NewDatasetError(describeSource(source), err)
	}

	ds, err := Parse(data)
	if err != nil {
		logger.Log("ERROR", "performance dataset rejected", map[string]interface{}{
			"source": describeSource(source),
			"error":  err.Error(),
		})
		return nil, shared.NewDatasetError(describeSource(source), err)
	}

	logger.Log("INFO", "performance dataset loaded", map[string]interface{}{
		"source":           describeSource(source),
		"cruise_altitudes": len(ds.CruisePerformance.DataByAltitude),
	})
	return ds, nil
}

// Read returns the raw document bytes for source without validating them
func (l *Loader) Read(ctx context.Context, source string) ([]byte, error) {
	switch {
	case IsBuiltin(source):
		return BuiltinDocument(), nil
	case IsRemote(source):
		return l.fetcher.Fetch(ctx, strings.TrimSpace(source))
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	}
}

func describeSource(source string) string {
	if IsBuiltin(source) {
		return BuiltinSource
	}
	return strings.TrimSpace(source)
}
