package flightplan_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

func TestValidateLeg(t *testing.T) {
	tests := []struct {
		name      string
		leg       flightplan.Leg
		wantField string
	}{
		{"valid", flightplan.Leg{ID: "1", DistanceNM: 10, PlannedAltitudeFt: flightplan.Float(4500)}, ""},
		{"nan distance", flightplan.Leg{DistanceNM: math.NaN()}, "distanceNM"},
		{"negative distance", flightplan.Leg{DistanceNM: -3}, "distanceNM"},
		{"infinite altitude", flightplan.Leg{PlannedAltitudeFt: flightplan.Float(math.Inf(1))}, "plannedAltitudeFt"},
		{"negative time", flightplan.Leg{PlannedTimeMin: flightplan.Float(-1)}, "plannedTimeMin"},
		{"bad band", flightplan.Leg{TempBand: "tropical"}, "tempBand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := flightplan.ValidateLeg(tt.leg)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *shared.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidateLegs_NamesLeg(t *testing.T) {
	err := flightplan.ValidateLegs([]flightplan.Leg{
		{ID: "ok", DistanceNM: 1},
		{ID: "broken", DistanceNM: -1},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "leg 2 (broken)")
}

func TestValidateSettings(t *testing.T) {
	assert.NoError(t, flightplan.ValidateSettings(flightplan.DefaultSettings()))
	assert.NoError(t, flightplan.ValidateSettings(flightplan.Settings{}))

	zeroSpeed := flightplan.DefaultSettings()
	zeroSpeed.DefaultCruiseKtas = flightplan.Float(0)
	assert.Error(t, flightplan.ValidateSettings(zeroSpeed))

	badUnits := flightplan.DefaultSettings()
	badUnits.FuelUnits = "kg"
	assert.Error(t, flightplan.ValidateSettings(badUnits))

	badMode := flightplan.DefaultSettings()
	badMode.ClimbMode = "cruise-climb"
	assert.Error(t, flightplan.ValidateSettings(badMode))

	nanReserve := flightplan.DefaultSettings()
	nanReserve.ReserveFuelGal = flightplan.Float(math.NaN())
	assert.Error(t, flightplan.ValidateSettings(nanReserve))
}
