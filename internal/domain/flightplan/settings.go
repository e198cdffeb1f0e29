package flightplan

import (
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

const (
	// FallbackGPH is the fuel flow assumed when no other figure is available
	FallbackGPH = 12.0
	// FallbackCruiseKtas is the cruise speed assumed when no other figure is available
	FallbackCruiseKtas = 135.0
)

// Settings are the global planning defaults. Leg fields override the cruise
// power setting per leg.
type Settings struct {
	TaxiFuelGal    float64  `json:"taxiFuelGal" mapstructure:"taxi_fuel_gal"`
	ReserveMinutes float64  `json:"reserveMinutes" mapstructure:"reserve_minutes"`
	ReserveFuelGal *float64 `json:"reserveFuelGal,omitempty" mapstructure:"reserve_fuel_gal"`

	// Flat figures used when no handbook dataset is loaded
	ClimbAllowanceGPH *float64 `json:"climbAllowanceGPH,omitempty" mapstructure:"climb_allowance_gph"`
	DefaultCruiseKtas *float64 `json:"defaultCruiseKtas,omitempty" mapstructure:"default_cruise_ktas"`

	ClimbMode          performance.ClimbMode `json:"climbMode,omitempty" mapstructure:"climb_mode"`
	CruiseRPM          *float64              `json:"cruiseRpm,omitempty" mapstructure:"cruise_rpm"`
	CruiseManifoldInHg *float64              `json:"cruiseManifoldInHg,omitempty" mapstructure:"cruise_manifold_inhg"`
	TempBand           performance.TempBand  `json:"tempBand,omitempty" mapstructure:"temp_band"`

	StartingFuelGal *float64         `json:"startingFuelGal,omitempty" mapstructure:"starting_fuel_gal"`
	FuelUnits       shared.FuelUnits `json:"fuelUnits,omitempty" mapstructure:"fuel_units"`

	// Percentages of total flight fuel
	HoldingPercent     float64 `json:"holdingPercent,omitempty" mapstructure:"holding_percent"`
	ContingencyPercent float64 `json:"contingencyPercent,omitempty" mapstructure:"contingency_percent"`
	// HoldingMinutes takes precedence over HoldingPercent when positive
	HoldingMinutes float64 `json:"holdingMinutes,omitempty" mapstructure:"holding_minutes"`
}

// DefaultSettings returns the planner's out-of-the-box settings: 6 L taxi,
// 333 L on board, 30 minute reserve, displayed in litres.
func DefaultSettings() Settings {
	return Settings{
		TaxiFuelGal:        1.585,
		StartingFuelGal:    Float(87.964),
		ReserveMinutes:     30,
		ClimbAllowanceGPH:  Float(15),
		DefaultCruiseKtas:  Float(FallbackCruiseKtas),
		CruiseRPM:          Float(2300),
		CruiseManifoldInHg: Float(23),
		FuelUnits:          shared.FuelUnitsLiters,
	}
}

func (s Settings) climbMode() performance.ClimbMode {
	if s.ClimbMode == "" {
		return performance.ClimbModeNormal
	}
	return s.ClimbMode
}

func (s Settings) cruiseKtas() float64 {
	return valueOr(s.DefaultCruiseKtas, FallbackCruiseKtas)
}

// cruiseQuery resolves the power setting for leg at altFt, leg overrides first
func (s Settings) cruiseQuery(leg Leg, altFt float64) performance.CruiseQuery {
	q := performance.CruiseQuery{
		AltitudeFt:   altFt,
		RPM:          valueOr(leg.CruiseRPM, valueOr(s.CruiseRPM, performance.DefaultCruiseRPM)),
		ManifoldInHg: leg.CruiseManifoldInHg,
		Band:         leg.TempBand,
	}
	if q.ManifoldInHg == nil {
		q.ManifoldInHg = s.CruiseManifoldInHg
	}
	if q.Band == "" {
		q.Band = s.TempBand
	}
	if q.Band == "" {
		q.Band = performance.TempBandStd
	}
	return q
}

// CruiseQueryFor returns the resolved cruise power setting for leg at altFt
func (s Settings) CruiseQueryFor(leg Leg, altFt float64) performance.CruiseQuery {
	return s.cruiseQuery(leg, altFt)
}
