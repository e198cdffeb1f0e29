package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
)

// planFile is a route read from YAML or JSON. YAML files use snake_case keys:
//
//	name: KPAO to KMRY
//	settings:
//	  reserve_minutes: 45
//	legs:
//	  - from: KPAO
//	    to: KSNS
//	    distance_nm: 60
//	    planned_altitude_ft: 5500
//
// JSON files use the camelCase keys of the HTTP API, so the output of
// `plan show --json` loads back unchanged. Unknown keys are an error.
type planFile struct {
	Name string           `json:"name"`
	Legs []flightplan.Leg `json:"legs"`

	// Settings is nil when the file has no settings section
	Settings *flightplan.Settings `json:"settings,omitempty"`
}

// loadPlanFile reads a plan file. Settings present in the file are laid over
// defaults, so a file only needs the fields it changes.
func loadPlanFile(path string, defaults flightplan.Settings) (*planFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	decoding := planFileDecoding(path)

	pf := &planFile{Name: v.GetString("name")}
	if err := v.UnmarshalKey("legs", &pf.Legs, decoding); err != nil {
		return nil, fmt.Errorf("failed to parse legs in %s: %w", path, err)
	}

	if v.IsSet("settings") {
		settings := defaults
		if err := v.UnmarshalKey("settings", &settings, decoding); err != nil {
			return nil, fmt.Errorf("failed to parse settings in %s: %w", path, err)
		}
		pf.Settings = &settings
	}

	return pf, nil
}

// planFileDecoding picks the struct tags matching the file's key convention
func planFileDecoding(path string) viper.DecoderConfigOption {
	tag := "mapstructure"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		tag = "json"
	}
	return func(c *mapstructure.DecoderConfig) {
		c.TagName = tag
		c.ErrorUnused = true
	}
}
