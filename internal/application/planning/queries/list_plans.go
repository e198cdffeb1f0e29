package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
)

// ListPlansQuery represents a query to list saved plans
type ListPlansQuery struct{}

// ListPlansResponse represents the result of listing plans
type ListPlansResponse struct {
	Plans []*flightplan.Plan
}

// ListPlansHandler handles the ListPlans query
type ListPlansHandler struct {
	repo flightplan.PlanRepository
}

// NewListPlansHandler creates a new ListPlansHandler
func NewListPlansHandler(repo flightplan.PlanRepository) *ListPlansHandler {
	return &ListPlansHandler{repo: repo}
}

// Handle executes the ListPlans query
func (h *ListPlansHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListPlansQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListPlansQuery")
	}

	plans, err := h.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &ListPlansResponse{Plans: plans}, nil
}
