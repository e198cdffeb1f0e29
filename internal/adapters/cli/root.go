package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath     string
	userConfigPath string
	unitsFlag      string
	datasetSource  string
	verbose        bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fuelplan",
		Short: "Fuel planner for the Cessna 182S",
		Long: `fuelplan computes trip time and fuel for a multi-leg flight in a Cessna 182S,
using the climb and cruise tables of the pilot's operating handbook. When no
handbook data is available it falls back to flat fuel flow and cruise speed.

Plans can be computed straight from a YAML or JSON file, or saved in the plan
store and edited leg by leg.

Examples:
  fuelplan compute route.yaml
  fuelplan compute route.yaml --fallback --units gal
  fuelplan cruise --alt 6500 --rpm 2300 --mp 21
  fuelplan plan create "KPAO to KMRY" --file route.yaml
  fuelplan plan add-leg "KPAO to KMRY" --from KSNS --to KMRY --distance 12
  fuelplan plan compute "KPAO to KMRY"
  fuelplan poh check`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&userConfigPath, "user-config", "",
		"Path to user preferences (default: ~/.fuelplan/config.json)")
	rootCmd.PersistentFlags().StringVar(&unitsFlag, "units", "",
		"Display fuel in gal or l (default: from preferences or plan settings)")
	rootCmd.PersistentFlags().StringVar(&datasetSource, "dataset", "",
		"Handbook dataset: builtin, a file path or an http(s) URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add command groups
	rootCmd.AddCommand(NewComputeCommand())
	rootCmd.AddCommand(NewCruiseCommand())
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewPOHCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
