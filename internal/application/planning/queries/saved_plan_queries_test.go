package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fuelplan-go/internal/application/planning"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning/queries"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/test/helpers"
)

func savedPlan(t *testing.T, repo *helpers.MockPlanRepository, id, name string, clock shared.Clock) *flightplan.Plan {
	t.Helper()
	plan, err := flightplan.NewPlan(id, name, flightplan.DefaultSettings(), clock)
	require.NoError(t, err)
	for i, leg := range exampleLegs() {
		leg.ID = string(rune('a' + i))
		require.NoError(t, plan.AddLeg(leg))
	}
	repo.AddPlan(plan)
	return plan
}

func TestComputeSavedPlanHandler_ByName(t *testing.T) {
	// Arrange
	repo := helpers.NewMockPlanRepository()
	savedPlan(t, repo, "p1", "Valley run", nil)
	handler := queries.NewComputeSavedPlanHandler(repo, planning.NewDatasetSelector(nil, ""))

	// Act
	resp, err := handler.Handle(context.Background(), &queries.ComputeSavedPlanQuery{PlanName: "Valley run"})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.ComputePlanResponse)
	assert.Equal(t, "p1", result.PlanID)
	assert.Equal(t, "Valley run", result.PlanName)
	assert.InDelta(t, 50.2, result.Result.Summary.TakeoffFuelRequiredGal, 0.01)
}

func TestComputeSavedPlanHandler_NotFound(t *testing.T) {
	// Arrange
	handler := queries.NewComputeSavedPlanHandler(helpers.NewMockPlanRepository(), planning.NewDatasetSelector(nil, ""))

	// Act
	_, err := handler.Handle(context.Background(), &queries.ComputeSavedPlanQuery{PlanID: "nope"})

	// Assert
	var notFound *shared.PlanNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestGetPlanHandler_RequiresReference(t *testing.T) {
	// Arrange
	handler := queries.NewGetPlanHandler(helpers.NewMockPlanRepository())

	// Act
	_, err := handler.Handle(context.Background(), &queries.GetPlanQuery{})

	// Assert
	var validationErr *shared.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestGetPlanHandler_ByID(t *testing.T) {
	// Arrange
	repo := helpers.NewMockPlanRepository()
	savedPlan(t, repo, "p1", "Valley run", nil)
	handler := queries.NewGetPlanHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetPlanQuery{PlanID: "p1"})

	// Assert
	require.NoError(t, err)
	assert.Len(t, resp.(*queries.GetPlanResponse).Plan.Legs(), 2)
}

func TestListPlansHandler_OldestFirst(t *testing.T) {
	// Arrange
	repo := helpers.NewMockPlanRepository()
	clock := shared.NewMockClock(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	savedPlan(t, repo, "p1", "First", clock)
	clock.Advance(time.Minute)
	savedPlan(t, repo, "p2", "Second", clock)
	handler := queries.NewListPlansHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.ListPlansQuery{})

	// Assert
	require.NoError(t, err)
	plans := resp.(*queries.ListPlansResponse).Plans
	require.Len(t, plans, 2)
	assert.Equal(t, "First", plans[0].Name())
}

func TestCruiseLookupHandler(t *testing.T) {
	// Arrange
	provider := helpers.NewMockDatasetProvider(helpers.NewC182Dataset())
	handler := queries.NewCruiseLookupHandler(planning.NewDatasetSelector(provider, "builtin"))

	// Act
	resp, err := handler.Handle(context.Background(), &queries.CruiseLookupQuery{
		AltitudeFt:   3000,
		RPM:          2400,
		ManifoldInHg: flightplan.Float(23),
		Band:         performance.TempBandStd,
	})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.CruiseLookupResponse)
	// Halfway between S.L. (MP 23: 136 kt, 13.2 gph) and 6000 ft (MP 22: 142 kt, 13.6 gph)
	assert.InDelta(t, 139.0, result.KTAS, 1e-9)
	assert.InDelta(t, 13.4, result.GPH, 1e-9)
	assert.Equal(t, "builtin", result.DatasetSource)
}

func TestCruiseLookupHandler_Defaults(t *testing.T) {
	// Arrange
	provider := helpers.NewMockDatasetProvider(helpers.NewC182Dataset())
	handler := queries.NewCruiseLookupHandler(planning.NewDatasetSelector(provider, "builtin"))

	// Act
	resp, err := handler.Handle(context.Background(), &queries.CruiseLookupQuery{AltitudeFt: -500})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.CruiseLookupResponse)
	assert.Equal(t, 0.0, result.AltitudeFt)
	assert.Equal(t, 2400.0, result.RPM)
	assert.Equal(t, performance.TempBandStd, result.Band)
	assert.Equal(t, 136.0, result.KTAS)
}

func TestCruiseLookupHandler_NoDataset(t *testing.T) {
	// Arrange
	handler := queries.NewCruiseLookupHandler(planning.NewDatasetSelector(nil, ""))

	// Act
	_, err := handler.Handle(context.Background(), &queries.CruiseLookupQuery{AltitudeFt: 4000})

	// Assert
	var datasetErr *shared.DatasetError
	assert.True(t, errors.As(err, &datasetErr))
}
