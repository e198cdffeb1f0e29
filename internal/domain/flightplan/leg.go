package flightplan

import "github.com/andrescamacho/fuelplan-go/internal/domain/performance"

// Leg is one segment of a route. Optional fields are nil when not given.
type Leg struct {
	ID         string  `json:"id" mapstructure:"id"`
	From       string  `json:"from" mapstructure:"from"`
	To         string  `json:"to" mapstructure:"to"`
	DistanceNM float64 `json:"distanceNM" mapstructure:"distance_nm"`

	// PlannedAltitudeFt defaults to the previous leg's altitude
	PlannedAltitudeFt *float64 `json:"plannedAltitudeFt,omitempty" mapstructure:"planned_altitude_ft"`

	// PlannedTimeMin replaces the distance/speed derived time when set and non-zero
	PlannedTimeMin *float64 `json:"plannedTimeMin,omitempty" mapstructure:"planned_time_min"`

	// Per-leg overrides of the cruise power setting in Settings
	CruiseRPM          *float64             `json:"cruiseRpm,omitempty" mapstructure:"cruise_rpm"`
	CruiseManifoldInHg *float64             `json:"cruiseManifoldInHg,omitempty" mapstructure:"cruise_manifold_inhg"`
	TempBand           performance.TempBand `json:"tempBand,omitempty" mapstructure:"temp_band"`
}

// hasPlannedTime mirrors the planner form, where a blank or zero time
// field means "derive from distance".
func (l Leg) hasPlannedTime() bool {
	return l.PlannedTimeMin != nil && *l.PlannedTimeMin != 0
}

// Float returns a pointer to v, for filling optional leg and settings fields
func Float(v float64) *float64 {
	return &v
}

func valueOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}
