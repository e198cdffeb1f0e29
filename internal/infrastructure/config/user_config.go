package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig represents user preferences stored in ~/.fuelplan/config.json
type UserConfig struct {
	// Plan used by "fuelplan plan compute/show" when no name is given
	DefaultPlan string `json:"default_plan,omitempty"`

	// Display units for fuel quantities: "gal" or "l"
	FuelUnits string `json:"fuel_units,omitempty"`
}

// UserConfigHandler manages loading and saving user configuration
type UserConfigHandler struct {
	configPath string
}

// NewUserConfigHandler creates a handler for ~/.fuelplan/config.json
func NewUserConfigHandler() (*UserConfigHandler, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewUserConfigHandlerAt(filepath.Join(homeDir, ".fuelplan", "config.json")), nil
}

// NewUserConfigHandlerAt creates a handler for an explicit file path
func NewUserConfigHandlerAt(path string) *UserConfigHandler {
	return &UserConfigHandler{configPath: path}
}

// Load reads the user config from disk. A missing file is an empty config.
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	data, err := os.ReadFile(h.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return &UserConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return &config, nil
}

// Save writes the user config to disk
func (h *UserConfigHandler) Save(config *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(h.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	if err := os.WriteFile(h.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}

// SetDefaultPlan records the plan used when none is named
func (h *UserConfigHandler) SetDefaultPlan(name string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultPlan = name
	return h.Save(config)
}

// SetFuelUnits records the preferred display units
func (h *UserConfigHandler) SetFuelUnits(units string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.FuelUnits = units
	return h.Save(config)
}

// ConfigPath returns the path to the user config file
func (h *UserConfigHandler) ConfigPath() string {
	return h.configPath
}
