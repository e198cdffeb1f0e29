package helpers

import (
	"context"
	"sort"
	"sync"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// MockPlanRepository is a test double for PlanRepository interface
type MockPlanRepository struct {
	mu      sync.RWMutex
	plans   map[string]*flightplan.Plan // planID -> plan
	SaveErr error
}

// NewMockPlanRepository creates a new mock plan repository
func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{
		plans: make(map[string]*flightplan.Plan),
	}
}

// AddPlan adds a plan to the mock repository
func (m *MockPlanRepository) AddPlan(p *flightplan.Plan) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[p.ID()] = p
}

// Save persists plan state
func (m *MockPlanRepository) Save(ctx context.Context, p *flightplan.Plan) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans[p.ID()] = p
	return nil
}

// FindByID retrieves a plan by ID
func (m *MockPlanRepository) FindByID(ctx context.Context, id string) (*flightplan.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.plans[id]
	if !ok {
		return nil, shared.NewPlanNotFoundError(id)
	}
	return p, nil
}

// FindByName retrieves a plan by name
func (m *MockPlanRepository) FindByName(ctx context.Context, name string) (*flightplan.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.plans {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, shared.NewPlanNotFoundError(name)
}

// List returns all plans, oldest first
func (m *MockPlanRepository) List(ctx context.Context) ([]*flightplan.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	plans := make([]*flightplan.Plan, 0, len(m.plans))
	for _, p := range m.plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		if !plans[i].CreatedAt().Equal(plans[j].CreatedAt()) {
			return plans[i].CreatedAt().Before(plans[j].CreatedAt())
		}
		return plans[i].Name() < plans[j].Name()
	})
	return plans, nil
}

// Delete removes a plan
func (m *MockPlanRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.plans[id]; !ok {
		return shared.NewPlanNotFoundError(id)
	}
	delete(m.plans, id)
	return nil
}

// Count returns the number of stored plans
func (m *MockPlanRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plans)
}
