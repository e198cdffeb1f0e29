package setup

import (
	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	planCommands "github.com/andrescamacho/fuelplan-go/internal/application/planning/commands"
	planQueries "github.com/andrescamacho/fuelplan-go/internal/application/planning/queries"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	planRepo flightplan.PlanRepository
	datasets *planning.DatasetSelector
	defaults flightplan.Settings
	clock    shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required dependencies.
// planRepo may be nil when only ad-hoc computations are served.
func NewHandlerRegistry(
	planRepo flightplan.PlanRepository,
	datasets flightplan.DatasetProvider,
	defaultSource string,
	defaults flightplan.Settings,
	clock shared.Clock,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		planRepo: planRepo,
		datasets: planning.NewDatasetSelector(datasets, defaultSource),
		defaults: defaults,
		clock:    clock,
	}
}

// RegisterPlanningHandlers registers all planning command and query handlers with the mediator
//
// This method registers:
//   - ComputePlanQuery and CruiseLookupQuery (always)
//   - ComputeSavedPlanQuery, GetPlanQuery, ListPlansQuery and the plan
//     editing commands (only when a plan repository is configured)
func (r *HandlerRegistry) RegisterPlanningHandlers(m common.Mediator) error {
	if err := common.RegisterHandler[*planQueries.ComputePlanQuery](m,
		planQueries.NewComputePlanHandler(r.datasets, r.defaults)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planQueries.CruiseLookupQuery](m,
		planQueries.NewCruiseLookupHandler(r.datasets)); err != nil {
		return err
	}

	if r.planRepo == nil {
		return nil
	}

	if err := common.RegisterHandler[*planQueries.ComputeSavedPlanQuery](m,
		planQueries.NewComputeSavedPlanHandler(r.planRepo, r.datasets)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planQueries.GetPlanQuery](m,
		planQueries.NewGetPlanHandler(r.planRepo)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planQueries.ListPlansQuery](m,
		planQueries.NewListPlansHandler(r.planRepo)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planCommands.CreatePlanCommand](m,
		planCommands.NewCreatePlanHandler(r.planRepo, r.defaults, r.clock)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planCommands.UpdatePlanLegsCommand](m,
		planCommands.NewUpdatePlanLegsHandler(r.planRepo)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planCommands.UpdatePlanSettingsCommand](m,
		planCommands.NewUpdatePlanSettingsHandler(r.planRepo)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planCommands.DeletePlanCommand](m,
		planCommands.NewDeletePlanHandler(r.planRepo)); err != nil {
		return err
	}

	return nil
}

// NewPlanningMediator builds a mediator with the logging middleware, any
// extra middlewares and every planning handler registered
func NewPlanningMediator(registry *HandlerRegistry, middlewares ...common.Middleware) (common.Mediator, error) {
	m := common.NewMediator()
	m.Use(common.LoggingMiddleware)
	for _, mw := range middlewares {
		m.Use(mw)
	}

	if err := registry.RegisterPlanningHandlers(m); err != nil {
		return nil, err
	}
	return m, nil
}
