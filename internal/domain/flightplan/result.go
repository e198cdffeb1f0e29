package flightplan

// PhaseSegment is the time, distance and fuel of a climb or cruise phase.
// A segment is left out of a leg result only when all three fields are
// zero; a cruise of zero minutes that still covers distance is kept.
type PhaseSegment struct {
	TimeMin    float64 `json:"timeMin"`
	DistanceNM float64 `json:"distanceNm"`
	FuelGal    float64 `json:"fuelGal"`
}

func (p PhaseSegment) isZero() bool {
	return p.TimeMin == 0 && p.DistanceNM == 0 && p.FuelGal == 0
}

// segmentOrNil drops a phase whose time, distance and fuel are all zero
func segmentOrNil(p PhaseSegment) *PhaseSegment {
	if p.isZero() {
		return nil
	}
	return &p
}

// ComputedLegResult is the computed time and fuel for one leg. Climb and
// Cruise are only filled in when a performance dataset was used.
type ComputedLegResult struct {
	LegID      string        `json:"legId"`
	TimeMin    float64       `json:"timeMin"`
	FuelGal    float64       `json:"fuelGal"`
	AverageGPH float64       `json:"averageGPH"`
	KTASUsed   float64       `json:"ktasUsed"`
	Climb      *PhaseSegment `json:"climb,omitempty"`
	Cruise     *PhaseSegment `json:"cruise,omitempty"`
}

// CumulativePoint is the running total after a leg
type CumulativePoint struct {
	TimeMin    float64 `json:"timeMin"`
	FuelGal    float64 `json:"fuelGal"`
	DistanceNM float64 `json:"distanceNM"`
}

// PlanSummary is the trip fuel summary. Holding and contingency are nil
// when they contribute nothing.
type PlanSummary struct {
	TotalTimeMin           float64  `json:"totalTimeMin"`
	TotalFuelGal           float64  `json:"totalFuelGal"`
	ReserveFuelGal         float64  `json:"reserveFuelGal"`
	TaxiFuelGal            float64  `json:"taxiFuelGal"`
	HoldingFuelGal         *float64 `json:"holdingFuelGal,omitempty"`
	ContingencyFuelGal     *float64 `json:"contingencyFuelGal,omitempty"`
	TakeoffFuelRequiredGal float64  `json:"takeoffFuelRequiredGal"`
}

// PlanResult is the output of ComputePlan
type PlanResult struct {
	Legs       []ComputedLegResult `json:"legs"`
	Summary    PlanSummary         `json:"summary"`
	Cumulative []CumulativePoint   `json:"cumulative"`
}
