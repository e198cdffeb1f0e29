package flightplan

import (
	"math"

	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// ComputeLeg computes a leg with flat figures and no climb/cruise split.
// It is used for every leg when no performance dataset is loaded.
func ComputeLeg(leg Leg, settings Settings) ComputedLegResult {
	gph := valueOr(settings.ClimbAllowanceGPH, FallbackGPH)
	ktas := settings.cruiseKtas()

	timeHours := leg.DistanceNM / ktas
	if leg.hasPlannedTime() {
		timeHours = *leg.PlannedTimeMin / 60
	}

	return ComputedLegResult{
		LegID:      leg.ID,
		TimeMin:    timeHours * 60,
		FuelGal:    timeHours * gph,
		AverageGPH: gph,
		KTASUsed:   ktas,
	}
}

// legCalculator computes consecutive legs of one route against a dataset.
// It carries the altitude reached by the previous leg; the route departs
// from sea level.
type legCalculator struct {
	ds        *performance.Dataset
	settings  Settings
	climbMode performance.ClimbMode
	prevAltFt float64
}

func newLegCalculator(ds *performance.Dataset, settings Settings) *legCalculator {
	return &legCalculator{
		ds:        ds,
		settings:  settings,
		climbMode: settings.climbMode(),
	}
}

// next computes leg and advances the altitude state. Legs must be passed in
// route order.
func (c *legCalculator) next(leg Leg) ComputedLegResult {
	targetAlt := math.Max(0, valueOr(leg.PlannedAltitudeFt, c.prevAltFt))

	// Only climbs are modelled; level legs and descents have no climb phase.
	var climb performance.ClimbMetrics
	if targetAlt > c.prevAltFt {
		climb, _ = performance.ClimbBetween(c.ds, c.prevAltFt, targetAlt, c.climbMode)
	}

	cruiseKtas, cruiseGPH := c.settings.cruiseKtas(), FallbackGPH
	if perf, ok := performance.CruiseAtAltitude(c.ds, c.settings.cruiseQuery(leg, targetAlt)); ok {
		cruiseKtas, cruiseGPH = perf.KTAS, perf.GPH
	}

	remainingDist := math.Max(0, leg.DistanceNM-climb.DistanceNm)
	cruiseHours := remainingDist / cruiseKtas
	if leg.hasPlannedTime() {
		cruiseHours = math.Max(0, *leg.PlannedTimeMin/60-climb.TimeMin/60)
	}
	cruiseFuel := cruiseHours * cruiseGPH
	cruiseTimeMin := cruiseHours * 60

	totalTime := climb.TimeMin + cruiseTimeMin
	totalFuel := climb.FuelUsedGal + cruiseFuel
	avgGPH := cruiseGPH
	if totalTime > 0 {
		avgGPH = totalFuel / (totalTime / 60)
	}

	c.prevAltFt = targetAlt

	return ComputedLegResult{
		LegID:      leg.ID,
		TimeMin:    totalTime,
		FuelGal:    totalFuel,
		AverageGPH: avgGPH,
		KTASUsed:   cruiseKtas,
		Climb: segmentOrNil(PhaseSegment{
			TimeMin:    climb.TimeMin,
			DistanceNM: climb.DistanceNm,
			FuelGal:    climb.FuelUsedGal,
		}),
		Cruise: segmentOrNil(PhaseSegment{
			TimeMin:    cruiseTimeMin,
			DistanceNM: remainingDist,
			FuelGal:    cruiseFuel,
		}),
	}
}
