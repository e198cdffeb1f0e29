package flightplan

import (
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/pkg/utils"
)

// ComputePlan computes every leg in route order, the running totals after
// each leg and the trip fuel summary. With a nil dataset every leg uses
// ComputeLeg. The result depends only on the arguments.
func ComputePlan(legs []Leg, settings Settings, ds *performance.Dataset) PlanResult {
	results := make([]ComputedLegResult, 0, len(legs))
	cumulative := make([]CumulativePoint, 0, len(legs))

	compute := func(leg Leg) ComputedLegResult { return ComputeLeg(leg, settings) }
	if ds != nil {
		calc := newLegCalculator(ds, settings)
		compute = calc.next
	}

	var total CumulativePoint
	for _, leg := range legs {
		r := compute(leg)
		results = append(results, r)

		total.TimeMin += r.TimeMin
		total.FuelGal += r.FuelGal
		total.DistanceNM += leg.DistanceNM
		cumulative = append(cumulative, total)
	}

	return PlanResult{
		Legs:       results,
		Summary:    summarize(results, total, settings),
		Cumulative: cumulative,
	}
}

// AverageFuelFlow is the mean of the legs' average fuel flows, or
// FallbackGPH for an empty route. Reserve and holding minutes burn at it.
func AverageFuelFlow(results []ComputedLegResult) float64 {
	flows := make([]float64, len(results))
	for i, r := range results {
		flows[i] = r.AverageGPH
	}
	return utils.Mean(flows, FallbackGPH)
}

func summarize(results []ComputedLegResult, total CumulativePoint, settings Settings) PlanSummary {
	avgGPH := AverageFuelFlow(results)
	flightFuel := total.FuelGal

	reserve := valueOr(settings.ReserveFuelGal, settings.ReserveMinutes/60*avgGPH)

	holding := max(0, settings.HoldingPercent) / 100 * flightFuel
	if settings.HoldingMinutes > 0 {
		holding = avgGPH * (settings.HoldingMinutes / 60)
	}
	contingency := max(0, settings.ContingencyPercent) / 100 * flightFuel

	return PlanSummary{
		TotalTimeMin:           total.TimeMin,
		TotalFuelGal:           flightFuel,
		ReserveFuelGal:         reserve,
		TaxiFuelGal:            settings.TaxiFuelGal,
		HoldingFuelGal:         nonZero(holding),
		ContingencyFuelGal:     nonZero(contingency),
		TakeoffFuelRequiredGal: flightFuel + reserve + settings.TaxiFuelGal + holding + contingency,
	}
}

func nonZero(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
