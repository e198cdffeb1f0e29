package planning

import (
	"context"
	"strings"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// DatasetSelector picks the handbook dataset for a computation: the
// request's source when given, otherwise the configured default
type DatasetSelector struct {
	provider      flightplan.DatasetProvider
	defaultSource string
}

// NewDatasetSelector creates a selector. A nil provider means every plan is
// computed in fallback mode.
func NewDatasetSelector(provider flightplan.DatasetProvider, defaultSource string) *DatasetSelector {
	return &DatasetSelector{provider: provider, defaultSource: defaultSource}
}

// Select loads the dataset. It returns a nil dataset without error when
// skip is set or no provider is configured.
func (s *DatasetSelector) Select(ctx context.Context, source string, skip bool) (*performance.Dataset, string, error) {
	if s == nil || s.provider == nil || skip {
		return nil, "", nil
	}

	source = strings.TrimSpace(source)
	if source == "" {
		source = s.defaultSource
	}

	ds, err := s.provider.Load(ctx, source)
	if err != nil {
		return nil, source, err
	}
	return ds, source, nil
}
