package flightplan

import (
	"math"
	"strconv"
)

// ProfilePoint is the fuel state at a waypoint of the route
type ProfilePoint struct {
	Waypoint         string  `json:"waypoint"`
	DistanceNM       float64 `json:"distanceNM"`
	ElapsedMin       float64 `json:"elapsedMin"`
	TimeRemainingMin float64 `json:"timeRemainingMin"`
	FuelRemainingGal float64 `json:"fuelRemainingGal"`
}

// BuildFuelProfile returns the fuel remaining at departure and at the end of
// each leg. Fuel on board after taxi is the starting fuel (or, if unset, the
// planned flight fuel) less taxi fuel; remaining fuel never goes below 0.
func BuildFuelProfile(legs []Leg, result PlanResult, settings Settings) []ProfilePoint {
	summary := result.Summary
	start := valueOr(settings.StartingFuelGal, summary.TotalFuelGal)
	afterTaxi := math.Max(0, start-summary.TaxiFuelGal)

	startName := "START"
	if len(legs) > 0 && legs[0].From != "" {
		startName = legs[0].From
	}

	points := make([]ProfilePoint, 0, len(result.Cumulative)+1)
	points = append(points, ProfilePoint{
		Waypoint:         startName,
		TimeRemainingMin: summary.TotalTimeMin,
		FuelRemainingGal: afterTaxi,
	})
	for i, c := range result.Cumulative {
		name := strconv.Itoa(i + 1)
		if i < len(legs) && legs[i].To != "" {
			name = legs[i].To
		}
		points = append(points, ProfilePoint{
			Waypoint:         name,
			DistanceNM:       c.DistanceNM,
			ElapsedMin:       c.TimeMin,
			TimeRemainingMin: math.Max(0, summary.TotalTimeMin-c.TimeMin),
			FuelRemainingGal: math.Max(0, afterTaxi-c.FuelGal),
		})
	}
	return points
}

// LandingFuelGal is the fuel expected on board at the final destination
func LandingFuelGal(profile []ProfilePoint) float64 {
	if len(profile) == 0 {
		return 0
	}
	return profile[len(profile)-1].FuelRemainingGal
}
