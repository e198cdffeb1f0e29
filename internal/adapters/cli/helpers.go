package cli

import (
	"fmt"

	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/config"
)

// newUserConfigHandler honours --user-config, falling back to ~/.fuelplan/config.json
func newUserConfigHandler() (*config.UserConfigHandler, error) {
	if userConfigPath != "" {
		return config.NewUserConfigHandlerAt(userConfigPath), nil
	}
	return config.NewUserConfigHandler()
}

// loadUserConfig returns the user preferences, or an empty set if none can be read
func loadUserConfig() *config.UserConfig {
	handler, err := newUserConfigHandler()
	if err != nil {
		return &config.UserConfig{}
	}
	userCfg, err := handler.Load()
	if err != nil {
		return &config.UserConfig{}
	}
	return userCfg
}

// resolvePlanName resolves the plan a command acts on
// Priority: positional argument > default plan in user config
func resolvePlanName(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	if userCfg := loadUserConfig(); userCfg.DefaultPlan != "" {
		return userCfg.DefaultPlan, nil
	}

	return "", fmt.Errorf("no plan specified: pass a plan name, or set a default with 'fuelplan plan use <name>'")
}

// resolveUnits picks the display units for fuel quantities
// Priority: --units flag > user config > the plan's own settings
func resolveUnits(planUnits shared.FuelUnits) (shared.FuelUnits, error) {
	if unitsFlag != "" {
		return shared.ParseFuelUnits(unitsFlag)
	}
	if userCfg := loadUserConfig(); userCfg.FuelUnits != "" {
		return shared.ParseFuelUnits(userCfg.FuelUnits)
	}
	if planUnits == "" {
		return shared.FuelUnitsGallons, nil
	}
	return planUnits, nil
}
