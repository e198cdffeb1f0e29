package queries

import (
	"context"
	"math"
	"time"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/metrics"
	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// LegCruiseSetting is the resolved cruise power setting of one leg and the
// handbook figures it maps to
type LegCruiseSetting struct {
	LegID      string  `json:"legId"`
	AltitudeFt float64 `json:"altitudeFt"`
	RPM        float64 `json:"rpm"`

	// ManifoldInHg is nil when the first row of the RPM block is used
	ManifoldInHg *float64             `json:"manifoldInHg,omitempty"`
	Band         performance.TempBand `json:"tempBand"`
	KTAS         *float64             `json:"ktas,omitempty"`
	GPH          *float64             `json:"gph,omitempty"`
}

// ComputePlanResponse is the result of computing a plan
type ComputePlanResponse struct {
	PlanID         string                    `json:"planId,omitempty"`
	PlanName       string                    `json:"planName,omitempty"`
	Mode           metrics.ComputationMode   `json:"mode"`
	DatasetSource  string                    `json:"datasetSource,omitempty"`
	Settings       flightplan.Settings       `json:"settings"`
	Result         flightplan.PlanResult     `json:"result"`
	Profile        []flightplan.ProfilePoint `json:"profile"`
	LandingFuelGal float64                   `json:"landingFuelGal"`
	CruiseSettings []LegCruiseSetting        `json:"cruiseSettings,omitempty"`
}

// computePlan runs the planner, records metrics and builds the response
func computePlan(
	ctx context.Context,
	legs []flightplan.Leg,
	settings flightplan.Settings,
	ds *performance.Dataset,
	source string,
) *ComputePlanResponse {
	mode := metrics.ModeFallback
	if ds != nil {
		mode = metrics.ModeDataset
	}

	start := time.Now()
	result := flightplan.ComputePlan(legs, settings, ds)
	elapsed := time.Since(start)

	metrics.RecordPlanComputation(mode, len(legs), elapsed.Seconds(), result.Summary.TakeoffFuelRequiredGal)

	profile := flightplan.BuildFuelProfile(legs, result, settings)
	response := &ComputePlanResponse{
		Mode:           mode,
		DatasetSource:  source,
		Settings:       settings,
		Result:         result,
		Profile:        profile,
		LandingFuelGal: flightplan.LandingFuelGal(profile),
	}
	if ds != nil {
		response.CruiseSettings = resolveCruiseSettings(legs, settings, ds)
	}

	common.LoggerFromContext(ctx).Log("INFO", "plan computed", map[string]interface{}{
		"mode":                 string(mode),
		"legs":                 len(legs),
		"total_fuel_gal":       result.Summary.TotalFuelGal,
		"takeoff_required_gal": result.Summary.TakeoffFuelRequiredGal,
		"duration_us":          elapsed.Microseconds(),
	})

	return response
}

// resolveCruiseSettings reports the cruise setting each leg is flown at,
// using the same altitude carry-over as the planner
func resolveCruiseSettings(legs []flightplan.Leg, settings flightplan.Settings, ds *performance.Dataset) []LegCruiseSetting {
	out := make([]LegCruiseSetting, 0, len(legs))
	previousAlt := 0.0
	for _, leg := range legs {
		alt := previousAlt
		if leg.PlannedAltitudeFt != nil {
			alt = *leg.PlannedAltitudeFt
		}
		alt = math.Max(0, alt)
		previousAlt = alt

		q := settings.CruiseQueryFor(leg, alt)
		setting := LegCruiseSetting{
			LegID:      leg.ID,
			AltitudeFt: alt,
			RPM:        q.RPM,
			Band:       q.Band,
		}
		if q.ManifoldInHg != nil && *q.ManifoldInHg != 0 {
			setting.ManifoldInHg = flightplan.Float(*q.ManifoldInHg)
		}
		if perf, ok := performance.CruiseAtAltitude(ds, q); ok {
			setting.KTAS = flightplan.Float(perf.KTAS)
			setting.GPH = flightplan.Float(perf.GPH)
		}
		out = append(out, setting)
	}
	return out
}
