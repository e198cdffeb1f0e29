package flightplan

import (
	"context"

	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// PlanRepository persists saved plans
type PlanRepository interface {
	Save(ctx context.Context, plan *Plan) error
	FindByID(ctx context.Context, id string) (*Plan, error)
	FindByName(ctx context.Context, name string) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
	Delete(ctx context.Context, id string) error
}

// DatasetProvider loads a validated handbook dataset
type DatasetProvider interface {
	Load(ctx context.Context, source string) (*performance.Dataset, error)
}
