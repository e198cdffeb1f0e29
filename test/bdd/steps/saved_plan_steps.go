package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	planCommands "github.com/andrescamacho/fuelplan-go/internal/application/planning/commands"
	planQueries "github.com/andrescamacho/fuelplan-go/internal/application/planning/queries"
	"github.com/andrescamacho/fuelplan-go/internal/application/setup"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/test/helpers"
)

type savedPlanContext struct {
	repo     flightplan.PlanRepository
	mediator common.Mediator
	response common.Response
	err      error
}

func (sc *savedPlanContext) reset() error {
	return sc.useRepository(helpers.NewMockPlanRepository())
}

func (sc *savedPlanContext) useRepository(repo flightplan.PlanRepository) error {
	sc.repo = repo
	registry := setup.NewHandlerRegistry(
		repo,
		helpers.NewMockDatasetProvider(helpers.NewC182Dataset()),
		"builtin",
		flightplan.DefaultSettings(),
		shared.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
	)
	m, err := setup.NewPlanningMediator(registry)
	if err != nil {
		return err
	}
	sc.mediator = m
	sc.response = nil
	sc.err = nil
	return nil
}

func (sc *savedPlanContext) send(request common.Request) {
	sc.response, sc.err = sc.mediator.Send(context.Background(), request)
}

func (sc *savedPlanContext) count() (int, error) {
	plans, err := sc.repo.List(context.Background())
	if err != nil {
		return 0, err
	}
	return len(plans), nil
}

// Given steps

func (sc *savedPlanContext) anEmptyPlanStore() error {
	n, err := sc.count()
	if err != nil {
		return err
	}
	if n != 0 {
		return fmt.Errorf("expected an empty plan store, found %d plans", n)
	}
	return nil
}

func (sc *savedPlanContext) anEmptyDatabasePlanStore() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	return sc.useRepository(persistence.NewGormPlanRepository(helpers.SharedTestDB))
}

func (sc *savedPlanContext) aSavedPlan(name string) error {
	sc.send(&planCommands.CreatePlanCommand{Name: name})
	return sc.err
}

// When steps

func (sc *savedPlanContext) iCreateThePlanWithLegs(name string, table *godog.Table) error {
	legs, err := parseLegTable(table)
	if err != nil {
		return err
	}
	sc.send(&planCommands.CreatePlanCommand{Name: name, Legs: legs})
	return nil
}

func (sc *savedPlanContext) iCreateThePlanWithNoLegs(name string) error {
	sc.send(&planCommands.CreatePlanCommand{Name: name})
	return nil
}

func (sc *savedPlanContext) iAddALegToThePlan(distance float64, from, to, name string) error {
	sc.send(&planCommands.UpdatePlanLegsCommand{
		PlanName: name,
		Action:   planCommands.LegActionAdd,
		Leg:      flightplan.Leg{From: from, To: to, DistanceNM: distance},
	})
	return sc.err
}

func (sc *savedPlanContext) iRemoveTheLegFromThePlan(legID, name string) error {
	sc.send(&planCommands.UpdatePlanLegsCommand{
		PlanName: name,
		Action:   planCommands.LegActionRemove,
		LegID:    legID,
	})
	return nil
}

func (sc *savedPlanContext) iComputeTheSavedPlanWithoutHandbookData(name string) error {
	sc.send(&planQueries.ComputeSavedPlanQuery{PlanName: name, Fallback: true})
	return nil
}

func (sc *savedPlanContext) iDeleteThePlan(name string) error {
	sc.send(&planCommands.DeletePlanCommand{PlanName: name})
	return sc.err
}

// Then steps

func (sc *savedPlanContext) theRequestShouldSucceed() error {
	if sc.err != nil {
		return fmt.Errorf("expected success, got error: %v", sc.err)
	}
	return nil
}

func (sc *savedPlanContext) computed() (*planQueries.ComputePlanResponse, error) {
	if sc.err != nil {
		return nil, fmt.Errorf("request failed: %v", sc.err)
	}
	resp, ok := sc.response.(*planQueries.ComputePlanResponse)
	if !ok {
		return nil, fmt.Errorf("expected a computed plan, got %T", sc.response)
	}
	return resp, nil
}

func (sc *savedPlanContext) theComputedPlanShouldHaveLegs(expected int) error {
	resp, err := sc.computed()
	if err != nil {
		return err
	}
	if len(resp.Result.Legs) != expected {
		return fmt.Errorf("expected %d computed legs, got %d", expected, len(resp.Result.Legs))
	}
	return nil
}

func (sc *savedPlanContext) theComputedTotalFuelShouldBe(expected float64) error {
	resp, err := sc.computed()
	if err != nil {
		return err
	}
	if !approxEqual(expected, resp.Result.Summary.TotalFuelGal) {
		return fmt.Errorf("expected total fuel %.2f, got %.4f", expected, resp.Result.Summary.TotalFuelGal)
	}
	return nil
}

func (sc *savedPlanContext) theRequestShouldFailWithAValidationErrorOn(field string) error {
	var validationErr *shared.ValidationError
	if !errors.As(sc.err, &validationErr) {
		return fmt.Errorf("expected a validation error, got %v", sc.err)
	}
	if validationErr.Field != field {
		return fmt.Errorf("expected validation error on %q, got %q", field, validationErr.Field)
	}
	return nil
}

func (sc *savedPlanContext) theRequestShouldFailBecauseTheLegWasNotFound() error {
	var notFound *shared.LegNotFoundError
	if !errors.As(sc.err, &notFound) {
		return fmt.Errorf("expected leg not found, got %v", sc.err)
	}
	return nil
}

func (sc *savedPlanContext) theRequestShouldFailBecauseThePlanWasNotFound() error {
	var notFound *shared.PlanNotFoundError
	if !errors.As(sc.err, &notFound) {
		return fmt.Errorf("expected plan not found, got %v", sc.err)
	}
	return nil
}

func (sc *savedPlanContext) thePlanStoreShouldHoldPlans(expected int) error {
	got, err := sc.count()
	if err != nil {
		return err
	}
	if got != expected {
		return fmt.Errorf("expected %d plans, got %d", expected, got)
	}
	return nil
}

func InitializeSavedPlanScenario(ctx *godog.ScenarioContext) {
	sc := &savedPlanContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, sc.reset()
	})

	// Given steps
	ctx.Step(`^an empty plan store$`, sc.anEmptyPlanStore)
	ctx.Step(`^an empty database plan store$`, sc.anEmptyDatabasePlanStore)
	ctx.Step(`^a saved plan "([^"]*)"$`, sc.aSavedPlan)

	// When steps
	ctx.Step(`^I create the plan "([^"]*)" with legs:$`, sc.iCreateThePlanWithLegs)
	ctx.Step(`^I create the plan "([^"]*)" with no legs$`, sc.iCreateThePlanWithNoLegs)
	ctx.Step(`^I add a ([0-9.]+) nm leg from "([^"]*)" to "([^"]*)" to the plan "([^"]*)"$`, sc.iAddALegToThePlan)
	ctx.Step(`^I remove the leg "([^"]*)" from the plan "([^"]*)"$`, sc.iRemoveTheLegFromThePlan)
	ctx.Step(`^I compute the saved plan "([^"]*)" without handbook data$`, sc.iComputeTheSavedPlanWithoutHandbookData)
	ctx.Step(`^I delete the plan "([^"]*)"$`, sc.iDeleteThePlan)

	// Then steps
	ctx.Step(`^the request should succeed$`, sc.theRequestShouldSucceed)
	ctx.Step(`^the computed plan should have (\d+) legs$`, sc.theComputedPlanShouldHaveLegs)
	ctx.Step(`^the computed total fuel should be ([0-9.]+) gallons$`, sc.theComputedTotalFuelShouldBe)
	ctx.Step(`^the request should fail with a validation error on "([^"]*)"$`, sc.theRequestShouldFailWithAValidationErrorOn)
	ctx.Step(`^the request should fail because the leg was not found$`, sc.theRequestShouldFailBecauseTheLegWasNotFound)
	ctx.Step(`^the request should fail because the plan was not found$`, sc.theRequestShouldFailBecauseThePlanWasNotFound)
	ctx.Step(`^the plan store should hold (\d+) plans$`, sc.thePlanStoreShouldHoldPlans)
}
