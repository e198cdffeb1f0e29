package config

import (
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

// PlannerConfig holds the default planning settings. Unset fields fall back
// to flightplan.DefaultSettings.
type PlannerConfig struct {
	TaxiFuelGal    *float64 `mapstructure:"taxi_fuel_gal" validate:"omitempty,gte=0"`
	ReserveMinutes *float64 `mapstructure:"reserve_minutes" validate:"omitempty,gte=0"`
	ReserveFuelGal *float64 `mapstructure:"reserve_fuel_gal" validate:"omitempty,gte=0"`

	ClimbAllowanceGPH *float64 `mapstructure:"climb_allowance_gph" validate:"omitempty,gte=0"`
	DefaultCruiseKtas *float64 `mapstructure:"default_cruise_ktas" validate:"omitempty,gt=0"`

	ClimbMode          string   `mapstructure:"climb_mode" validate:"omitempty,oneof=normal max"`
	CruiseRPM          *float64 `mapstructure:"cruise_rpm" validate:"omitempty,gt=0"`
	CruiseManifoldInHg *float64 `mapstructure:"cruise_manifold_inhg" validate:"omitempty,gte=0"`
	TempBand           string   `mapstructure:"temp_band" validate:"omitempty,oneof=stdMinus20C std stdPlus20C"`

	StartingFuelGal *float64 `mapstructure:"starting_fuel_gal" validate:"omitempty,gte=0"`
	FuelUnits       string   `mapstructure:"fuel_units" validate:"omitempty,oneof=gal l"`

	HoldingPercent     *float64 `mapstructure:"holding_percent" validate:"omitempty,gte=0"`
	ContingencyPercent *float64 `mapstructure:"contingency_percent" validate:"omitempty,gte=0"`
	HoldingMinutes     *float64 `mapstructure:"holding_minutes" validate:"omitempty,gte=0"`
}

// ToSettings overlays the configured values on flightplan.DefaultSettings
func (c PlannerConfig) ToSettings() flightplan.Settings {
	s := flightplan.DefaultSettings()

	setFloat(&s.TaxiFuelGal, c.TaxiFuelGal)
	setFloat(&s.ReserveMinutes, c.ReserveMinutes)
	setFloat(&s.HoldingPercent, c.HoldingPercent)
	setFloat(&s.ContingencyPercent, c.ContingencyPercent)
	setFloat(&s.HoldingMinutes, c.HoldingMinutes)

	setOptional(&s.ReserveFuelGal, c.ReserveFuelGal)
	setOptional(&s.ClimbAllowanceGPH, c.ClimbAllowanceGPH)
	setOptional(&s.DefaultCruiseKtas, c.DefaultCruiseKtas)
	setOptional(&s.CruiseRPM, c.CruiseRPM)
	setOptional(&s.CruiseManifoldInHg, c.CruiseManifoldInHg)
	setOptional(&s.StartingFuelGal, c.StartingFuelGal)

	if c.ClimbMode != "" {
		s.ClimbMode = performance.ClimbMode(c.ClimbMode)
	}
	if c.TempBand != "" {
		s.TempBand = performance.TempBand(c.TempBand)
	}
	if c.FuelUnits != "" {
		s.FuelUnits = shared.FuelUnits(c.FuelUnits)
	}

	return s
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setOptional(dst **float64, v *float64) {
	if v != nil {
		val := *v
		*dst = &val
	}
}
