package flightplan

import (
	"fmt"
	"math"

	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// ValidateLeg rejects legs whose numeric fields are not finite or are
// negative. ComputePlan does not call it: NaN input there yields NaN output.
func ValidateLeg(leg Leg) error {
	if err := checkNonNegative("distanceNM", leg.DistanceNM); err != nil {
		return err
	}
	optional := []struct {
		field string
		value *float64
	}{
		{"plannedAltitudeFt", leg.PlannedAltitudeFt},
		{"plannedTimeMin", leg.PlannedTimeMin},
		{"cruiseRpm", leg.CruiseRPM},
		{"cruiseManifoldInHg", leg.CruiseManifoldInHg},
	}
	for _, o := range optional {
		if o.value == nil {
			continue
		}
		if err := checkNonNegative(o.field, *o.value); err != nil {
			return err
		}
	}
	if leg.TempBand != "" && !leg.TempBand.IsValid() {
		return shared.NewValidationError("tempBand", fmt.Sprintf("unknown band %q", leg.TempBand))
	}
	return nil
}

// ValidateLegs validates each leg, naming the offending leg in the error
func ValidateLegs(legs []Leg) error {
	for i, leg := range legs {
		if err := ValidateLeg(leg); err != nil {
			return fmt.Errorf("leg %d (%s): %w", i+1, leg.ID, err)
		}
	}
	return nil
}

// ValidateSettings applies the same checks to the global settings
func ValidateSettings(s Settings) error {
	required := []struct {
		field string
		value float64
	}{
		{"taxiFuelGal", s.TaxiFuelGal},
		{"reserveMinutes", s.ReserveMinutes},
		{"holdingPercent", s.HoldingPercent},
		{"contingencyPercent", s.ContingencyPercent},
		{"holdingMinutes", s.HoldingMinutes},
	}
	for _, r := range required {
		if err := checkNonNegative(r.field, r.value); err != nil {
			return err
		}
	}

	optional := []struct {
		field string
		value *float64
	}{
		{"reserveFuelGal", s.ReserveFuelGal},
		{"climbAllowanceGPH", s.ClimbAllowanceGPH},
		{"cruiseRpm", s.CruiseRPM},
		{"cruiseManifoldInHg", s.CruiseManifoldInHg},
		{"startingFuelGal", s.StartingFuelGal},
	}
	for _, o := range optional {
		if o.value == nil {
			continue
		}
		if err := checkNonNegative(o.field, *o.value); err != nil {
			return err
		}
	}

	// Speed divides distance, so zero is rejected as well
	if s.DefaultCruiseKtas != nil {
		if v := *s.DefaultCruiseKtas; math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return shared.NewValidationError("defaultCruiseKtas", "must be a positive number")
		}
	}

	if s.TempBand != "" && !s.TempBand.IsValid() {
		return shared.NewValidationError("tempBand", fmt.Sprintf("unknown band %q", s.TempBand))
	}
	if _, err := performance.ParseClimbMode(string(s.ClimbMode)); err != nil {
		return shared.NewValidationError("climbMode", err.Error())
	}
	if _, err := shared.ParseFuelUnits(string(s.FuelUnits)); err != nil {
		return shared.NewValidationError("fuelUnits", err.Error())
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return shared.NewValidationError(field, "must be a finite number")
	}
	if v < 0 {
		return shared.NewValidationError(field, "cannot be negative")
	}
	return nil
}
