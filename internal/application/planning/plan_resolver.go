package planning

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// PlanResolver finds a saved plan by ID or by name
type PlanResolver struct {
	repo flightplan.PlanRepository
}

// NewPlanResolver creates a new plan resolver
func NewPlanResolver(repo flightplan.PlanRepository) *PlanResolver {
	return &PlanResolver{repo: repo}
}

// Resolve looks the plan up by ID first, then by name. At least one of
// them must be given.
func (r *PlanResolver) Resolve(ctx context.Context, planID, planName string) (*flightplan.Plan, error) {
	planID = strings.TrimSpace(planID)
	planName = strings.TrimSpace(planName)

	if planID == "" && planName == "" {
		return nil, shared.NewValidationError("plan", "plan id or name is required")
	}

	if planID != "" {
		plan, err := r.repo.FindByID(ctx, planID)
		if err != nil {
			return nil, fmt.Errorf("failed to load plan: %w", err)
		}
		return plan, nil
	}

	plan, err := r.repo.FindByName(ctx, planName)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return plan, nil
}
