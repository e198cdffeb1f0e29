package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/pkg/utils"
)

// LegAction is the edit applied by UpdatePlanLegsCommand
type LegAction string

const (
	LegActionAdd     LegAction = "add"
	LegActionUpdate  LegAction = "update"
	LegActionRemove  LegAction = "remove"
	LegActionReorder LegAction = "reorder"
	LegActionReset   LegAction = "reset"
)

// UpdatePlanLegsCommand edits the legs of a saved plan
type UpdatePlanLegsCommand struct {
	PlanID   string
	PlanName string
	Action   LegAction
	Leg      flightplan.Leg // add, update
	LegID    string         // remove
	Order    []string       // reorder
}

// UpdatePlanLegsResponse represents the edited plan
type UpdatePlanLegsResponse struct {
	Plan *flightplan.Plan
}

// UpdatePlanLegsHandler handles the UpdatePlanLegs command
type UpdatePlanLegsHandler struct {
	repo     flightplan.PlanRepository
	resolver *planning.PlanResolver
}

// NewUpdatePlanLegsHandler creates a new UpdatePlanLegsHandler
func NewUpdatePlanLegsHandler(repo flightplan.PlanRepository) *UpdatePlanLegsHandler {
	return &UpdatePlanLegsHandler{
		repo:     repo,
		resolver: planning.NewPlanResolver(repo),
	}
}

// Handle executes the UpdatePlanLegs command
func (h *UpdatePlanLegsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdatePlanLegsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdatePlanLegsCommand")
	}

	plan, err := h.resolver.Resolve(ctx, cmd.PlanID, cmd.PlanName)
	if err != nil {
		return nil, err
	}

	if err := applyLegAction(plan, cmd); err != nil {
		return nil, err
	}

	if err := h.repo.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "plan legs updated", map[string]interface{}{
		"plan_id": plan.ID(),
		"action":  string(cmd.Action),
		"legs":    len(plan.Legs()),
	})

	return &UpdatePlanLegsResponse{Plan: plan}, nil
}

func applyLegAction(plan *flightplan.Plan, cmd *UpdatePlanLegsCommand) error {
	switch cmd.Action {
	case LegActionAdd:
		leg := cmd.Leg
		if leg.ID == "" {
			leg.ID = utils.GenerateLegID(leg.From, leg.To)
		}
		return plan.AddLeg(leg)
	case LegActionUpdate:
		return plan.UpdateLeg(cmd.Leg)
	case LegActionRemove:
		return plan.RemoveLeg(cmd.LegID)
	case LegActionReorder:
		return plan.ReorderLegs(cmd.Order)
	case LegActionReset:
		plan.Reset()
		return nil
	default:
		return shared.NewValidationError("action", fmt.Sprintf("unknown leg action %q", cmd.Action))
	}
}
