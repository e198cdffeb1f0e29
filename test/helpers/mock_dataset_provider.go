package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// MockDatasetProvider is a test double for DatasetProvider. It serves one
// dataset for every source and records the sources requested.
type MockDatasetProvider struct {
	mu      sync.Mutex
	dataset *performance.Dataset
	err     error
	sources []string
}

// NewMockDatasetProvider creates a provider returning ds
func NewMockDatasetProvider(ds *performance.Dataset) *MockDatasetProvider {
	return &MockDatasetProvider{dataset: ds}
}

// SetError makes every Load fail with a DatasetError wrapping err
func (m *MockDatasetProvider) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Load implements DatasetProvider
func (m *MockDatasetProvider) Load(ctx context.Context, source string) (*performance.Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append(m.sources, source)
	if m.err != nil {
		return nil, shared.NewDatasetError(source, m.err)
	}
	return m.dataset, nil
}

// Sources returns the sources requested so far
func (m *MockDatasetProvider) Sources() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sources...)
}
