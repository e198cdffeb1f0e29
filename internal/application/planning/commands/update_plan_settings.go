package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
)

// UpdatePlanSettingsCommand replaces the settings of a saved plan
type UpdatePlanSettingsCommand struct {
	PlanID   string
	PlanName string
	Settings flightplan.Settings
}

// UpdatePlanSettingsResponse represents the edited plan
type UpdatePlanSettingsResponse struct {
	Plan *flightplan.Plan
}

// UpdatePlanSettingsHandler handles the UpdatePlanSettings command
type UpdatePlanSettingsHandler struct {
	repo     flightplan.PlanRepository
	resolver *planning.PlanResolver
}

// NewUpdatePlanSettingsHandler creates a new UpdatePlanSettingsHandler
func NewUpdatePlanSettingsHandler(repo flightplan.PlanRepository) *UpdatePlanSettingsHandler {
	return &UpdatePlanSettingsHandler{
		repo:     repo,
		resolver: planning.NewPlanResolver(repo),
	}
}

// Handle executes the UpdatePlanSettings command
func (h *UpdatePlanSettingsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdatePlanSettingsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdatePlanSettingsCommand")
	}

	plan, err := h.resolver.Resolve(ctx, cmd.PlanID, cmd.PlanName)
	if err != nil {
		return nil, err
	}
	if err := plan.ApplySettings(cmd.Settings); err != nil {
		return nil, err
	}
	if err := h.repo.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	return &UpdatePlanSettingsResponse{Plan: plan}, nil
}
