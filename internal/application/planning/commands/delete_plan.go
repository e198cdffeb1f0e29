package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
)

// DeletePlanCommand deletes a saved plan
type DeletePlanCommand struct {
	PlanID   string
	PlanName string
}

// DeletePlanResponse names the deleted plan
type DeletePlanResponse struct {
	PlanID   string
	PlanName string
}

// DeletePlanHandler handles the DeletePlan command
type DeletePlanHandler struct {
	repo     flightplan.PlanRepository
	resolver *planning.PlanResolver
}

// NewDeletePlanHandler creates a new DeletePlanHandler
func NewDeletePlanHandler(repo flightplan.PlanRepository) *DeletePlanHandler {
	return &DeletePlanHandler{
		repo:     repo,
		resolver: planning.NewPlanResolver(repo),
	}
}

// Handle executes the DeletePlan command
func (h *DeletePlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeletePlanCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeletePlanCommand")
	}

	plan, err := h.resolver.Resolve(ctx, cmd.PlanID, cmd.PlanName)
	if err != nil {
		return nil, err
	}
	if err := h.repo.Delete(ctx, plan.ID()); err != nil {
		return nil, fmt.Errorf("failed to delete plan: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "plan deleted", map[string]interface{}{
		"plan_id": plan.ID(),
		"name":    plan.Name(),
	})

	return &DeletePlanResponse{PlanID: plan.ID(), PlanName: plan.Name()}, nil
}
