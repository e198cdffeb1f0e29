package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/test/helpers"
)

type flightPlanContext struct {
	settings flightplan.Settings
	dataset  *performance.Dataset
	legs     []flightplan.Leg
	result   *flightplan.PlanResult
}

func (fc *flightPlanContext) reset() {
	fc.settings = flightplan.DefaultSettings()
	fc.dataset = nil
	fc.legs = nil
	fc.result = nil
}

// Given steps

func (fc *flightPlanContext) theDefaultPlannerSettings() error {
	fc.settings = flightplan.DefaultSettings()
	return nil
}

func (fc *flightPlanContext) noPerformanceDataset() error {
	fc.dataset = nil
	return nil
}

func (fc *flightPlanContext) theC182SHandbookDataset() error {
	fc.dataset = helpers.NewC182Dataset()
	return nil
}

func (fc *flightPlanContext) cruisePowerWithFirstManifoldRow(rpm float64) error {
	fc.settings.CruiseRPM = flightplan.Float(rpm)
	fc.settings.CruiseManifoldInHg = nil
	return nil
}

func (fc *flightPlanContext) theSettingIs(name string, value float64) error {
	switch name {
	case "reserve fuel gal":
		fc.settings.ReserveFuelGal = flightplan.Float(value)
	case "reserve minutes":
		fc.settings.ReserveMinutes = value
	case "holding percent":
		fc.settings.HoldingPercent = value
	case "holding minutes":
		fc.settings.HoldingMinutes = value
	case "contingency percent":
		fc.settings.ContingencyPercent = value
	case "taxi fuel gal":
		fc.settings.TaxiFuelGal = value
	default:
		return fmt.Errorf("unknown setting %q", name)
	}
	return nil
}

func (fc *flightPlanContext) theLegs(table *godog.Table) error {
	legs, err := parseLegTable(table)
	if err != nil {
		return err
	}
	fc.legs = legs
	return nil
}

// When steps

func (fc *flightPlanContext) iComputeThePlan() error {
	result := flightplan.ComputePlan(fc.legs, fc.settings, fc.dataset)
	fc.result = &result
	return nil
}

// Then steps

func (fc *flightPlanContext) leg(n int) (flightplan.ComputedLegResult, error) {
	if fc.result == nil {
		return flightplan.ComputedLegResult{}, fmt.Errorf("no plan computed")
	}
	if n < 1 || n > len(fc.result.Legs) {
		return flightplan.ComputedLegResult{}, fmt.Errorf("leg %d out of range (plan has %d legs)", n, len(fc.result.Legs))
	}
	return fc.result.Legs[n-1], nil
}

func (fc *flightPlanContext) legShouldTakeAndBurn(n int, minutes, gallons float64) error {
	leg, err := fc.leg(n)
	if err != nil {
		return err
	}
	if !approxEqual(minutes, leg.TimeMin) {
		return fmt.Errorf("expected leg %d to take %.2f minutes, got %.4f", n, minutes, leg.TimeMin)
	}
	if !approxEqual(gallons, leg.FuelGal) {
		return fmt.Errorf("expected leg %d to burn %.2f gallons, got %.4f", n, gallons, leg.FuelGal)
	}
	return nil
}

func (fc *flightPlanContext) legShouldIncludeAClimb(n int) error {
	leg, err := fc.leg(n)
	if err != nil {
		return err
	}
	if leg.Climb == nil {
		return fmt.Errorf("expected leg %d to include a climb, but it has none", n)
	}
	return nil
}

func (fc *flightPlanContext) legShouldNotIncludeAClimb(n int) error {
	leg, err := fc.leg(n)
	if err != nil {
		return err
	}
	if leg.Climb != nil {
		return fmt.Errorf("expected leg %d to have no climb, got %+v", n, *leg.Climb)
	}
	return nil
}

func (fc *flightPlanContext) legShouldCruiseAt(n int, ktas, gph float64) error {
	leg, err := fc.leg(n)
	if err != nil {
		return err
	}
	if !approxEqual(ktas, leg.KTASUsed) {
		return fmt.Errorf("expected leg %d to cruise at %.0f KTAS, got %.2f", n, ktas, leg.KTASUsed)
	}
	if !approxEqual(gph, leg.AverageGPH) {
		return fmt.Errorf("expected leg %d to burn %.1f gph, got %.2f", n, gph, leg.AverageGPH)
	}
	return nil
}

func (fc *flightPlanContext) summaryValueShouldBe(name string, actual func(flightplan.PlanSummary) float64) func(float64) error {
	return func(expected float64) error {
		if fc.result == nil {
			return fmt.Errorf("no plan computed")
		}
		got := actual(fc.result.Summary)
		if !approxEqual(expected, got) {
			return fmt.Errorf("expected %s %.2f, got %.4f", name, expected, got)
		}
		return nil
	}
}

func (fc *flightPlanContext) theHoldingFuelShouldBe(expected float64) error {
	if fc.result == nil {
		return fmt.Errorf("no plan computed")
	}
	holding := fc.result.Summary.HoldingFuelGal
	if holding == nil {
		return fmt.Errorf("expected holding fuel %.2f, got none", expected)
	}
	if !approxEqual(expected, *holding) {
		return fmt.Errorf("expected holding fuel %.2f, got %.4f", expected, *holding)
	}
	return nil
}

func (fc *flightPlanContext) thereShouldBeNoHoldingFuel() error {
	if fc.result == nil {
		return fmt.Errorf("no plan computed")
	}
	if h := fc.result.Summary.HoldingFuelGal; h != nil {
		return fmt.Errorf("expected no holding fuel, got %.4f", *h)
	}
	return nil
}

func (fc *flightPlanContext) thereShouldBeNoContingencyFuel() error {
	if fc.result == nil {
		return fmt.Errorf("no plan computed")
	}
	if c := fc.result.Summary.ContingencyFuelGal; c != nil {
		return fmt.Errorf("expected no contingency fuel, got %.4f", *c)
	}
	return nil
}

func InitializeFlightPlanScenario(ctx *godog.ScenarioContext) {
	fc := &flightPlanContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the default planner settings$`, fc.theDefaultPlannerSettings)
	ctx.Step(`^no performance dataset$`, fc.noPerformanceDataset)
	ctx.Step(`^the C182S handbook dataset$`, fc.theC182SHandbookDataset)
	ctx.Step(`^cruise power of (\d+) RPM with the first manifold pressure row$`, fc.cruisePowerWithFirstManifoldRow)
	ctx.Step(`^the setting "([^"]*)" is ([0-9.]+)$`, fc.theSettingIs)
	ctx.Step(`^the legs:$`, fc.theLegs)

	// When steps
	ctx.Step(`^I compute the plan$`, fc.iComputeThePlan)

	// Then steps
	ctx.Step(`^leg (\d+) should take ([0-9.]+) minutes and burn ([0-9.]+) gallons$`, fc.legShouldTakeAndBurn)
	ctx.Step(`^leg (\d+) should include a climb$`, fc.legShouldIncludeAClimb)
	ctx.Step(`^leg (\d+) should not include a climb$`, fc.legShouldNotIncludeAClimb)
	ctx.Step(`^leg (\d+) should cruise at ([0-9.]+) KTAS burning ([0-9.]+) gph$`, fc.legShouldCruiseAt)
	ctx.Step(`^the total time should be ([0-9.]+) minutes$`,
		fc.summaryValueShouldBe("total time", func(s flightplan.PlanSummary) float64 { return s.TotalTimeMin }))
	ctx.Step(`^the total fuel should be ([0-9.]+) gallons$`,
		fc.summaryValueShouldBe("total fuel", func(s flightplan.PlanSummary) float64 { return s.TotalFuelGal }))
	ctx.Step(`^the reserve fuel should be ([0-9.]+) gallons$`,
		fc.summaryValueShouldBe("reserve fuel", func(s flightplan.PlanSummary) float64 { return s.ReserveFuelGal }))
	ctx.Step(`^the takeoff fuel required should be ([0-9.]+) gallons$`,
		fc.summaryValueShouldBe("takeoff fuel required", func(s flightplan.PlanSummary) float64 { return s.TakeoffFuelRequiredGal }))
	ctx.Step(`^the holding fuel should be ([0-9.]+) gallons$`, fc.theHoldingFuelShouldBe)
	ctx.Step(`^there should be no holding fuel$`, fc.thereShouldBeNoHoldingFuel)
	ctx.Step(`^there should be no contingency fuel$`, fc.thereShouldBeNoContingencyFuel)
}
