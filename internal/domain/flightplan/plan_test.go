package flightplan_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

func newTestPlan(t *testing.T) (*flightplan.Plan, *shared.MockClock) {
	clock := shared.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	plan, err := flightplan.NewPlan("plan-1", "Weekend trip", flightplan.DefaultSettings(), clock)
	require.NoError(t, err)
	return plan, clock
}

func TestNewPlan_Validation(t *testing.T) {
	_, err := flightplan.NewPlan("", "name", flightplan.DefaultSettings(), nil)
	assert.Error(t, err)

	_, err = flightplan.NewPlan("id", "  ", flightplan.DefaultSettings(), nil)
	assert.Error(t, err)

	bad := flightplan.DefaultSettings()
	bad.TaxiFuelGal = -1
	_, err = flightplan.NewPlan("id", "name", bad, nil)
	var vErr *shared.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "taxiFuelGal", vErr.Field)
}

func TestPlan_AddUpdateRemoveLegs(t *testing.T) {
	plan, clock := newTestPlan(t)
	created := plan.UpdatedAt()

	clock.Advance(time.Minute)
	require.NoError(t, plan.AddLeg(flightplan.Leg{ID: "a", From: "KABC", To: "KDEF", DistanceNM: 120}))
	require.NoError(t, plan.AddLeg(flightplan.Leg{ID: "b", From: "KDEF", To: "KGHI", DistanceNM: 250}))
	assert.True(t, plan.UpdatedAt().After(created))
	assert.Equal(t, 370.0, plan.TotalDistanceNM())

	require.NoError(t, plan.UpdateLeg(flightplan.Leg{ID: "a", From: "KABC", To: "KDEF", DistanceNM: 100}))
	assert.Equal(t, 100.0, plan.Legs()[0].DistanceNM)

	require.NoError(t, plan.RemoveLeg("a"))
	require.Len(t, plan.Legs(), 1)
	assert.Equal(t, "b", plan.Legs()[0].ID)
}

func TestPlan_LegErrors(t *testing.T) {
	plan, _ := newTestPlan(t)
	require.NoError(t, plan.AddLeg(flightplan.Leg{ID: "a", DistanceNM: 10}))

	assert.Error(t, plan.AddLeg(flightplan.Leg{ID: "a", DistanceNM: 10}), "duplicate id")
	assert.Error(t, plan.AddLeg(flightplan.Leg{DistanceNM: 10}), "empty id")
	assert.Error(t, plan.AddLeg(flightplan.Leg{ID: "neg", DistanceNM: -1}), "negative distance")

	var notFound *shared.LegNotFoundError
	assert.True(t, errors.As(plan.RemoveLeg("missing"), &notFound))
	assert.True(t, errors.As(plan.UpdateLeg(flightplan.Leg{ID: "missing"}), &notFound))
}

func TestPlan_ReorderLegs(t *testing.T) {
	plan, _ := newTestPlan(t)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, plan.AddLeg(flightplan.Leg{ID: id, DistanceNM: 10}))
	}

	require.NoError(t, plan.ReorderLegs([]string{"c", "a", "b"}))

	legs := plan.Legs()
	require.Len(t, legs, 3)
	assert.Equal(t, "c", legs[0].ID)
	assert.Equal(t, "a", legs[1].ID)
	assert.Equal(t, "b", legs[2].ID)
}

func TestPlan_ReorderLegsRejectsIncompleteOrders(t *testing.T) {
	tests := []struct {
		name     string
		order    []string
		notFound bool
	}{
		{"duplicate id", []string{"a", "a"}, false},
		{"missing leg", []string{"b"}, false},
		{"extra id", []string{"a", "b", "c"}, false},
		{"unknown id", []string{"a", "zzz"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			plan, _ := newTestPlan(t)
			require.NoError(t, plan.AddLeg(flightplan.Leg{ID: "a", DistanceNM: 10}))
			require.NoError(t, plan.AddLeg(flightplan.Leg{ID: "b", DistanceNM: 20}))

			// Act
			err := plan.ReorderLegs(tt.order)

			// Assert
			require.Error(t, err)
			if tt.notFound {
				var notFound *shared.LegNotFoundError
				assert.True(t, errors.As(err, &notFound))
			} else {
				var validationErr *shared.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, "order", validationErr.Field)
			}
			legs := plan.Legs()
			require.Len(t, legs, 2)
			assert.Equal(t, "a", legs[0].ID)
			assert.Equal(t, "b", legs[1].ID)
			assert.Equal(t, 30.0, plan.TotalDistanceNM())
		})
	}
}

func TestPlan_LegsReturnsCopy(t *testing.T) {
	plan, _ := newTestPlan(t)
	require.NoError(t, plan.AddLeg(flightplan.Leg{ID: "a", DistanceNM: 10}))

	legs := plan.Legs()
	legs[0].DistanceNM = 999

	assert.Equal(t, 10.0, plan.Legs()[0].DistanceNM)
}

func TestPlan_ResetAndCompute(t *testing.T) {
	plan, _ := newTestPlan(t)
	require.NoError(t, plan.AddLeg(flightplan.Leg{ID: "a", DistanceNM: 135}))
	settings := flightplan.Settings{TaxiFuelGal: 1}
	require.NoError(t, plan.ApplySettings(settings))

	result := plan.Compute(nil)
	assert.InDelta(t, 12.0, result.Summary.TotalFuelGal, 1e-9)

	plan.Reset()
	assert.Empty(t, plan.Legs())
	assert.Equal(t, flightplan.DefaultSettings(), plan.Settings())
}
