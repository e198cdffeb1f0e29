package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
)

// GetPlanQuery represents a query to get a saved plan
type GetPlanQuery struct {
	PlanID   string // Optional: plan ID
	PlanName string // Optional: plan name, used when PlanID is empty
}

// GetPlanResponse represents the result of getting a plan
type GetPlanResponse struct {
	Plan *flightplan.Plan
}

// GetPlanHandler handles the GetPlan query
type GetPlanHandler struct {
	resolver *planning.PlanResolver
}

// NewGetPlanHandler creates a new GetPlanHandler
func NewGetPlanHandler(repo flightplan.PlanRepository) *GetPlanHandler {
	return &GetPlanHandler{resolver: planning.NewPlanResolver(repo)}
}

// Handle executes the GetPlan query
func (h *GetPlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetPlanQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPlanQuery")
	}

	plan, err := h.resolver.Resolve(ctx, query.PlanID, query.PlanName)
	if err != nil {
		return nil, err
	}

	return &GetPlanResponse{Plan: plan}, nil
}
