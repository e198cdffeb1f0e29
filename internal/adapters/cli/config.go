package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage fuelplan configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (FP_* prefix)
2. Config file (config.yaml)
3. Default values

User preferences (default plan, display units) are stored in ~/.fuelplan/config.json

Examples:
  fuelplan config show
  fuelplan config set-units gal
  fuelplan config clear-plan`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetUnitsCommand())
	cmd.AddCommand(newConfigClearPlanCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the current configuration settings.

Shows both system configuration and user preferences.

Example:
  fuelplan config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Load system config
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.DefaultConfig()
			}

			// Load user config
			userConfigHandler, err := newUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			// Display configuration
			fmt.Fprintln(out, "fuelplan Configuration")
			fmt.Fprintln(out, "======================")

			fmt.Fprintln(out, "User Preferences:")
			fmt.Fprintf(out, "  Config file:      %s\n", userConfigHandler.ConfigPath())
			fmt.Fprintf(out, "  Default Plan:     %s\n", orNotSet(userCfg.DefaultPlan))
			fmt.Fprintf(out, "  Fuel Units:       %s\n", orNotSet(userCfg.FuelUnits))

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}

			settings := cfg.Planner.ToSettings()
			fmt.Fprintln(out, "\nPlanner Defaults:")
			fmt.Fprintf(out, "  Taxi Fuel:        %s\n", shared.FuelUnitsGallons.Format(settings.TaxiFuelGal))
			fmt.Fprintf(out, "  Starting Fuel:    %s\n", formatOptionalFuel(settings.StartingFuelGal, shared.FuelUnitsGallons))
			fmt.Fprintf(out, "  Reserve:          %.0f min\n", settings.ReserveMinutes)
			fmt.Fprintf(out, "  Cruise Power:     %s rpm, %s\n",
				formatOptional(settings.CruiseRPM, "%.0f"), formatOptional(settings.CruiseManifoldInHg, "%.0f in"))
			fmt.Fprintf(out, "  Fuel Units:       %s\n", settings.FuelUnits)

			fmt.Fprintln(out, "\nHandbook Dataset:")
			fmt.Fprintf(out, "  Source:           %s\n", cfg.Dataset.Source)
			fmt.Fprintf(out, "  Cache:            %d entries, ttl %s\n", cfg.Dataset.CacheSize, cfg.Dataset.CacheTTL)
			fmt.Fprintf(out, "  Fetch Timeout:    %s\n", cfg.Dataset.Fetch.Timeout)
			fmt.Fprintf(out, "  Max Retries:      %d\n", cfg.Dataset.Fetch.Retry.MaxAttempts)
			fmt.Fprintf(out, "  API Sources:      %s\n", orNotSet(strings.Join(cfg.Dataset.AllowedSources, ", ")))

			fmt.Fprintln(out, "\nAPI Server:")
			fmt.Fprintf(out, "  Address:          %s\n", cfg.Server.Address)
			fmt.Fprintf(out, "  Rate Limit:       %.0f req/s (burst: %d)\n",
				cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Burst)
			fmt.Fprintf(out, "  Metrics:          %t (%s)\n", cfg.Metrics.Enabled, cfg.Metrics.Path)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}

	return cmd
}

// newConfigSetUnitsCommand creates the config set-units subcommand
func newConfigSetUnitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-units <gal|l>",
		Short: "Set the default display units",
		Long: `Set the units fuel quantities are displayed in.

Computations always run in US gallons; this only changes output.
Override per command with --units.

Examples:
  fuelplan config set-units gal
  fuelplan config set-units l`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return fmt.Errorf("units must be gal or l")
			}
			units, err := shared.ParseFuelUnits(args[0])
			if err != nil {
				return err
			}

			userConfigHandler, err := newUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetFuelUnits(string(units)); err != nil {
				return fmt.Errorf("failed to set fuel units: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Fuel will be displayed in %s\n", units.Label())
			return nil
		},
	}

	return cmd
}

// newConfigClearPlanCommand creates the config clear-plan subcommand
func newConfigClearPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-plan",
		Short: "Clear default plan setting",
		Long: `Remove the default plan setting.

After clearing, plan commands need an explicit plan name.

Example:
  fuelplan config clear-plan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := newUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			if err := userConfigHandler.SetDefaultPlan(""); err != nil {
				return fmt.Errorf("failed to clear default plan: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Default plan cleared")
			return nil
		},
	}

	return cmd
}

func orNotSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
