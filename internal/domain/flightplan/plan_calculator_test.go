package flightplan_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/test/helpers"
)

func defaultRoute() []flightplan.Leg {
	return []flightplan.Leg{
		{ID: "leg-1", From: "A", To: "B", DistanceNM: 120, PlannedAltitudeFt: flightplan.Float(8000)},
		{ID: "leg-2", From: "B", To: "C", DistanceNM: 250, PlannedAltitudeFt: flightplan.Float(9000)},
	}
}

func TestComputePlan_FallbackEndToEnd(t *testing.T) {
	// Arrange
	settings := flightplan.DefaultSettings()

	// Act
	result := flightplan.ComputePlan(defaultRoute(), settings, nil)

	// Assert
	require.Len(t, result.Legs, 2)
	assert.InDelta(t, 53.333, result.Legs[0].TimeMin, 0.001)
	assert.InDelta(t, 13.333, result.Legs[0].FuelGal, 0.001)
	assert.InDelta(t, 111.111, result.Legs[1].TimeMin, 0.001)
	assert.InDelta(t, 27.778, result.Legs[1].FuelGal, 0.001)
	assert.Nil(t, result.Legs[0].Climb)
	assert.Nil(t, result.Legs[0].Cruise)

	s := result.Summary
	assert.InDelta(t, 164.444, s.TotalTimeMin, 0.001)
	assert.InDelta(t, 41.111, s.TotalFuelGal, 0.001)
	assert.InDelta(t, 7.5, s.ReserveFuelGal, 1e-9)
	assert.Equal(t, 1.585, s.TaxiFuelGal)
	assert.Nil(t, s.HoldingFuelGal)
	assert.Nil(t, s.ContingencyFuelGal)
	assert.InDelta(t, 50.196, s.TakeoffFuelRequiredGal, 0.001)
}

func TestComputePlan_CumulativeTotals(t *testing.T) {
	result := flightplan.ComputePlan(defaultRoute(), flightplan.DefaultSettings(), nil)

	require.Len(t, result.Cumulative, 2)
	assert.Equal(t, 120.0, result.Cumulative[0].DistanceNM)
	assert.Equal(t, 370.0, result.Cumulative[1].DistanceNM)
	assert.InDelta(t, result.Legs[0].FuelGal, result.Cumulative[0].FuelGal, 1e-12)
	assert.InDelta(t, result.Legs[0].FuelGal+result.Legs[1].FuelGal, result.Cumulative[1].FuelGal, 1e-12)
	assert.InDelta(t, result.Summary.TotalTimeMin, result.Cumulative[1].TimeMin, 1e-12)
}

func TestComputePlan_IsIdempotent(t *testing.T) {
	ds := helpers.NewC182Dataset()
	legs := defaultRoute()
	settings := flightplan.DefaultSettings()

	first := flightplan.ComputePlan(legs, settings, ds)
	second := flightplan.ComputePlan(legs, settings, ds)

	assert.Equal(t, first, second)
}

func TestComputePlan_ReserveFuelOverridesMinutes(t *testing.T) {
	settings := flightplan.DefaultSettings()
	settings.ReserveMinutes = 45
	settings.ReserveFuelGal = flightplan.Float(9.25)

	result := flightplan.ComputePlan(defaultRoute(), settings, nil)

	assert.Equal(t, 9.25, result.Summary.ReserveFuelGal)
}

func TestComputePlan_HoldingMinutesOverridePercent(t *testing.T) {
	settings := flightplan.DefaultSettings()
	settings.HoldingMinutes = 30
	settings.HoldingPercent = 10

	result := flightplan.ComputePlan(defaultRoute(), settings, nil)

	require.NotNil(t, result.Summary.HoldingFuelGal)
	assert.InDelta(t, 7.5, *result.Summary.HoldingFuelGal, 1e-9)
}

func TestComputePlan_PercentBasedHoldingAndContingency(t *testing.T) {
	settings := flightplan.DefaultSettings()
	settings.HoldingPercent = 10
	settings.ContingencyPercent = 5

	result := flightplan.ComputePlan(defaultRoute(), settings, nil)

	s := result.Summary
	require.NotNil(t, s.HoldingFuelGal)
	require.NotNil(t, s.ContingencyFuelGal)
	assert.InDelta(t, 0.10*s.TotalFuelGal, *s.HoldingFuelGal, 1e-9)
	assert.InDelta(t, 0.05*s.TotalFuelGal, *s.ContingencyFuelGal, 1e-9)
	assert.InDelta(t,
		s.TotalFuelGal+s.ReserveFuelGal+s.TaxiFuelGal+*s.HoldingFuelGal+*s.ContingencyFuelGal,
		s.TakeoffFuelRequiredGal, 1e-9)
}

func TestComputePlan_NegativePercentsContributeNothing(t *testing.T) {
	settings := flightplan.DefaultSettings()
	settings.HoldingPercent = -5
	settings.ContingencyPercent = -5

	result := flightplan.ComputePlan(defaultRoute(), settings, nil)

	assert.Nil(t, result.Summary.HoldingFuelGal)
	assert.Nil(t, result.Summary.ContingencyFuelGal)
}

func TestComputePlan_EmptyRoute(t *testing.T) {
	settings := flightplan.Settings{TaxiFuelGal: 1, ReserveMinutes: 30}

	result := flightplan.ComputePlan(nil, settings, helpers.NewC182Dataset())

	assert.Empty(t, result.Legs)
	assert.Empty(t, result.Cumulative)
	assert.Equal(t, 0.0, result.Summary.TotalFuelGal)
	// Reserve burns at the 12 gph fallback
	assert.InDelta(t, 6.0, result.Summary.ReserveFuelGal, 1e-9)
	assert.InDelta(t, 7.0, result.Summary.TakeoffFuelRequiredGal, 1e-9)
}

func TestComputePlan_WithDatasetSplitsClimbAndCruise(t *testing.T) {
	// Arrange
	ds := helpers.NewC182Dataset()
	settings := flightplan.Settings{
		TaxiFuelGal:        1.5,
		ReserveMinutes:     45,
		CruiseRPM:          flightplan.Float(2400),
		CruiseManifoldInHg: flightplan.Float(22),
	}
	legs := []flightplan.Leg{
		{ID: "1", From: "KAAA", To: "KBBB", DistanceNM: 100, PlannedAltitudeFt: flightplan.Float(8000)},
	}

	// Act
	result := flightplan.ComputePlan(legs, settings, ds)

	// Assert: climb 0 -> 8000 is 13 min / 4 gal / 22 nm; cruise at 8000 ft
	// interpolates 142/13.6 (6000) and 144/12.4 (10000) to 143 kt / 13 gph.
	leg := result.Legs[0]
	require.NotNil(t, leg.Climb)
	require.NotNil(t, leg.Cruise)
	assert.InDelta(t, 13.0, leg.Climb.TimeMin, 1e-9)
	assert.InDelta(t, 4.0, leg.Climb.FuelGal, 1e-9)
	assert.InDelta(t, 22.0, leg.Climb.DistanceNM, 1e-9)
	assert.InDelta(t, 143.0, leg.KTASUsed, 1e-9)
	assert.InDelta(t, 78.0, leg.Cruise.DistanceNM, 1e-9)
	assert.InDelta(t, 78.0/143*60, leg.Cruise.TimeMin, 1e-9)
	assert.InDelta(t, 78.0/143*13, leg.Cruise.FuelGal, 1e-9)
	assert.InDelta(t, 13+78.0/143*60, leg.TimeMin, 1e-9)
	assert.InDelta(t, 4+78.0/143*13, leg.FuelGal, 1e-9)
	assert.InDelta(t, leg.FuelGal/(leg.TimeMin/60), leg.AverageGPH, 1e-9)
}

func TestComputePlan_AltitudeCarryOver(t *testing.T) {
	ds := helpers.NewC182Dataset()
	settings := flightplan.DefaultSettings()
	legs := []flightplan.Leg{
		{ID: "1", DistanceNM: 40, PlannedAltitudeFt: flightplan.Float(0)},
		{ID: "2", DistanceNM: 80, PlannedAltitudeFt: flightplan.Float(8000)},
		{ID: "3", DistanceNM: 80, PlannedAltitudeFt: flightplan.Float(8000)},
		{ID: "4", DistanceNM: 60, PlannedAltitudeFt: flightplan.Float(6000)},
	}

	result := flightplan.ComputePlan(legs, settings, ds)

	assert.Nil(t, result.Legs[0].Climb, "sea level leg")
	assert.NotNil(t, result.Legs[1].Climb, "climb to 8000")
	assert.Nil(t, result.Legs[2].Climb, "level at 8000")
	assert.Nil(t, result.Legs[3].Climb, "descent to 6000")
}

func TestComputePlan_MissingAltitudeKeepsPreviousLevel(t *testing.T) {
	ds := helpers.NewC182Dataset()
	legs := []flightplan.Leg{
		{ID: "1", DistanceNM: 80, PlannedAltitudeFt: flightplan.Float(4000)},
		{ID: "2", DistanceNM: 80},
		{ID: "3", DistanceNM: 80, PlannedAltitudeFt: flightplan.Float(8000)},
	}

	result := flightplan.ComputePlan(legs, flightplan.DefaultSettings(), ds)

	assert.Nil(t, result.Legs[1].Climb)
	require.NotNil(t, result.Legs[2].Climb)
	// Only the 4000 -> 8000 segment is charged
	assert.InDelta(t, 7.0, result.Legs[2].Climb.TimeMin, 1e-9)
	assert.InDelta(t, 2.0, result.Legs[2].Climb.FuelGal, 1e-9)
	assert.InDelta(t, 12.0, result.Legs[2].Climb.DistanceNM, 1e-9)
}

func TestComputePlan_PlannedTimeOverridesCruiseTime(t *testing.T) {
	ds := helpers.NewC182Dataset()
	settings := flightplan.Settings{CruiseRPM: flightplan.Float(2400), CruiseManifoldInHg: flightplan.Float(22)}
	legs := []flightplan.Leg{
		{ID: "1", DistanceNM: 100, PlannedAltitudeFt: flightplan.Float(8000), PlannedTimeMin: flightplan.Float(60)},
	}

	result := flightplan.ComputePlan(legs, settings, ds)

	leg := result.Legs[0]
	assert.InDelta(t, 60.0, leg.TimeMin, 1e-9)
	require.NotNil(t, leg.Cruise)
	assert.InDelta(t, 47.0, leg.Cruise.TimeMin, 1e-9)
	assert.InDelta(t, 47.0/60*13, leg.Cruise.FuelGal, 1e-9)
}

func TestComputePlan_PlannedTimeShorterThanClimb(t *testing.T) {
	ds := helpers.NewC182Dataset()
	legs := []flightplan.Leg{
		{ID: "1", DistanceNM: 100, PlannedAltitudeFt: flightplan.Float(8000), PlannedTimeMin: flightplan.Float(5)},
	}

	result := flightplan.ComputePlan(legs, flightplan.DefaultSettings(), ds)

	leg := result.Legs[0]
	require.NotNil(t, leg.Cruise)
	assert.Equal(t, 0.0, leg.Cruise.TimeMin)
	assert.Equal(t, 0.0, leg.Cruise.FuelGal)
	assert.InDelta(t, 78.0, leg.Cruise.DistanceNM, 1e-9)
	assert.InDelta(t, 13.0, leg.TimeMin, 1e-9)
}

func TestComputePlan_ClimbLongerThanLeg(t *testing.T) {
	ds := helpers.NewC182Dataset()
	legs := []flightplan.Leg{
		{ID: "1", DistanceNM: 10, PlannedAltitudeFt: flightplan.Float(8000)},
	}

	result := flightplan.ComputePlan(legs, flightplan.DefaultSettings(), ds)

	leg := result.Legs[0]
	assert.Nil(t, leg.Cruise)
	assert.InDelta(t, 13.0, leg.TimeMin, 1e-9)
	assert.InDelta(t, 4.0, leg.FuelGal, 1e-9)
}

func TestComputePlan_PerLegOverrides(t *testing.T) {
	ds := helpers.NewC182Dataset()
	settings := flightplan.Settings{
		CruiseRPM:          flightplan.Float(2400),
		CruiseManifoldInHg: flightplan.Float(23),
		TempBand:           performance.TempBandStd,
	}
	legs := []flightplan.Leg{
		{
			ID: "1", DistanceNM: 120, PlannedAltitudeFt: flightplan.Float(0),
			CruiseRPM: flightplan.Float(2200), CruiseManifoldInHg: flightplan.Float(21),
			TempBand: performance.TempBandStdPlus20C,
		},
	}

	result := flightplan.ComputePlan(legs, settings, ds)

	// Sea level, 2200 RPM, 21 inHg, ISA +20: 121 kt / 10.0 gph
	leg := result.Legs[0]
	assert.Equal(t, 121.0, leg.KTASUsed)
	assert.InDelta(t, 120.0/121*60, leg.TimeMin, 1e-9)
	assert.InDelta(t, 120.0/121*10, leg.FuelGal, 1e-9)
	assert.InDelta(t, 10.0, leg.AverageGPH, 1e-9)
}

func TestComputePlan_MaxRateClimbMode(t *testing.T) {
	ds := helpers.NewC182Dataset()
	settings := flightplan.DefaultSettings()
	settings.ClimbMode = performance.ClimbModeMax
	legs := []flightplan.Leg{{ID: "1", DistanceNM: 100, PlannedAltitudeFt: flightplan.Float(8000)}}

	result := flightplan.ComputePlan(legs, settings, ds)

	require.NotNil(t, result.Legs[0].Climb)
	assert.InDelta(t, 11.0, result.Legs[0].Climb.TimeMin, 1e-9)
	assert.InDelta(t, 3.4, result.Legs[0].Climb.FuelGal, 1e-9)
	assert.InDelta(t, 15.0, result.Legs[0].Climb.DistanceNM, 1e-9)
}

func TestComputePlan_CruiseLookupFallback(t *testing.T) {
	ds := helpers.NewC182Dataset()
	ds.CruisePerformance.DataByAltitude = nil
	settings := flightplan.Settings{DefaultCruiseKtas: flightplan.Float(120)}
	legs := []flightplan.Leg{{ID: "1", DistanceNM: 120, PlannedAltitudeFt: flightplan.Float(0)}}

	result := flightplan.ComputePlan(legs, settings, ds)

	leg := result.Legs[0]
	assert.Equal(t, 120.0, leg.KTASUsed)
	assert.InDelta(t, 60.0, leg.TimeMin, 1e-9)
	assert.InDelta(t, 12.0, leg.FuelGal, 1e-9)
}

func TestComputeLeg_Fallback(t *testing.T) {
	leg := flightplan.Leg{ID: "x", DistanceNM: 135}

	result := flightplan.ComputeLeg(leg, flightplan.Settings{})

	assert.Equal(t, "x", result.LegID)
	assert.InDelta(t, 60.0, result.TimeMin, 1e-9)
	assert.InDelta(t, 12.0, result.FuelGal, 1e-9)
	assert.Equal(t, 12.0, result.AverageGPH)
	assert.Equal(t, 135.0, result.KTASUsed)
}

func TestComputeLeg_PlannedTime(t *testing.T) {
	settings := flightplan.Settings{ClimbAllowanceGPH: flightplan.Float(15)}

	withTime := flightplan.ComputeLeg(flightplan.Leg{DistanceNM: 500, PlannedTimeMin: flightplan.Float(90)}, settings)
	zeroTime := flightplan.ComputeLeg(flightplan.Leg{DistanceNM: 135, PlannedTimeMin: flightplan.Float(0)}, settings)

	assert.InDelta(t, 90.0, withTime.TimeMin, 1e-9)
	assert.InDelta(t, 22.5, withTime.FuelGal, 1e-9)
	// A zero planned time falls back to distance / speed
	assert.InDelta(t, 60.0, zeroTime.TimeMin, 1e-9)
}

func TestComputeLeg_NaNPropagates(t *testing.T) {
	result := flightplan.ComputeLeg(flightplan.Leg{DistanceNM: math.NaN()}, flightplan.Settings{})

	assert.True(t, math.IsNaN(result.FuelGal))
}
