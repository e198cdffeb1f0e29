package bdd

import (
	"fmt"
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/fuelplan-go/test/bdd/steps"
	"github.com/andrescamacho/fuelplan-go/test/helpers"
)

func TestMain(m *testing.M) {
	if err := helpers.InitializeSharedTestDB(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize shared test database: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	helpers.CloseSharedTestDB()
	os.Exit(code)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// NOTE: FlightPlanScenario registered first; saved plan scenarios reuse its
	// leg table step wording and first registration wins in godog
	steps.InitializeFlightPlanScenario(sc)
	steps.InitializeSavedPlanScenario(sc)
}
