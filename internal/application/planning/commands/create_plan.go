package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/pkg/utils"
)

// CreatePlanCommand saves a new named plan
type CreatePlanCommand struct {
	Name     string
	Legs     []flightplan.Leg
	Settings *flightplan.Settings // Optional: defaults to the handler's settings
}

// CreatePlanResponse represents the result of creating a plan
type CreatePlanResponse struct {
	Plan *flightplan.Plan
}

// CreatePlanHandler handles the CreatePlan command
type CreatePlanHandler struct {
	repo     flightplan.PlanRepository
	defaults flightplan.Settings
	clock    shared.Clock
}

// NewCreatePlanHandler creates a new CreatePlanHandler
func NewCreatePlanHandler(repo flightplan.PlanRepository, defaults flightplan.Settings, clock shared.Clock) *CreatePlanHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &CreatePlanHandler{
		repo:     repo,
		defaults: defaults,
		clock:    clock,
	}
}

// Handle executes the CreatePlan command
func (h *CreatePlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreatePlanCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreatePlanCommand")
	}

	if err := h.ensureNameAvailable(ctx, cmd.Name); err != nil {
		return nil, err
	}

	settings := h.defaults
	if cmd.Settings != nil {
		settings = *cmd.Settings
	}

	plan, err := flightplan.NewPlan(utils.GeneratePlanID(), cmd.Name, settings, h.clock)
	if err != nil {
		return nil, err
	}
	for _, leg := range planning.AssignLegIDs(cmd.Legs) {
		if err := plan.AddLeg(leg); err != nil {
			return nil, err
		}
	}

	if err := h.repo.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "plan created", map[string]interface{}{
		"plan_id": plan.ID(),
		"name":    plan.Name(),
		"legs":    len(plan.Legs()),
	})

	return &CreatePlanResponse{Plan: plan}, nil
}

func (h *CreatePlanHandler) ensureNameAvailable(ctx context.Context, name string) error {
	_, err := h.repo.FindByName(ctx, name)
	if err == nil {
		return shared.NewValidationError("name", fmt.Sprintf("a plan named %q already exists", name))
	}
	var notFound *shared.PlanNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to check plan name: %w", err)
}
