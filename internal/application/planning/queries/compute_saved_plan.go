package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
)

// ComputeSavedPlanQuery computes a saved plan with its own settings
type ComputeSavedPlanQuery struct {
	PlanID        string // Optional: plan ID
	PlanName      string // Optional: plan name, used when PlanID is empty
	DatasetSource string
	Fallback      bool
}

// ComputeSavedPlanHandler handles the ComputeSavedPlan query
type ComputeSavedPlanHandler struct {
	resolver *planning.PlanResolver
	datasets *planning.DatasetSelector
}

// NewComputeSavedPlanHandler creates a new ComputeSavedPlanHandler
func NewComputeSavedPlanHandler(repo flightplan.PlanRepository, datasets *planning.DatasetSelector) *ComputeSavedPlanHandler {
	return &ComputeSavedPlanHandler{
		resolver: planning.NewPlanResolver(repo),
		datasets: datasets,
	}
}

// Handle executes the ComputeSavedPlan query
func (h *ComputeSavedPlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ComputeSavedPlanQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ComputeSavedPlanQuery")
	}

	plan, err := h.resolver.Resolve(ctx, query.PlanID, query.PlanName)
	if err != nil {
		return nil, err
	}

	ds, source, err := h.datasets.Select(ctx, query.DatasetSource, query.Fallback)
	if err != nil {
		return nil, err
	}

	response := computePlan(ctx, plan.Legs(), plan.Settings(), ds, source)
	response.PlanID = plan.ID()
	response.PlanName = plan.Name()
	return response, nil
}
