package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
)

// ComputePlanQuery computes an ad-hoc route that is not saved
type ComputePlanQuery struct {
	Legs     []flightplan.Leg
	Settings *flightplan.Settings // Optional: defaults to the handler's settings
	// DatasetSource overrides the configured handbook dataset
	DatasetSource string
	// Fallback skips the handbook dataset and uses the flat figures
	Fallback bool
}

// ComputePlanHandler handles the ComputePlan query
type ComputePlanHandler struct {
	datasets *planning.DatasetSelector
	defaults flightplan.Settings
}

// NewComputePlanHandler creates a new ComputePlanHandler
func NewComputePlanHandler(datasets *planning.DatasetSelector, defaults flightplan.Settings) *ComputePlanHandler {
	return &ComputePlanHandler{
		datasets: datasets,
		defaults: defaults,
	}
}

// Handle executes the ComputePlan query
func (h *ComputePlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ComputePlanQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ComputePlanQuery")
	}

	settings := h.defaults
	if query.Settings != nil {
		settings = *query.Settings
	}
	if err := flightplan.ValidateSettings(settings); err != nil {
		return nil, err
	}

	legs := planning.AssignLegIDs(query.Legs)
	if err := flightplan.ValidateLegs(legs); err != nil {
		return nil, err
	}

	ds, source, err := h.datasets.Select(ctx, query.DatasetSource, query.Fallback)
	if err != nil {
		return nil, err
	}

	return computePlan(ctx, legs, settings, ds, source), nil
}
