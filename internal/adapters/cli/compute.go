package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/fuelplan-go/internal/application/planning/queries"
)

// NewComputeCommand creates the compute command for ad-hoc plan files
func NewComputeCommand() *cobra.Command {
	var (
		fallback   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "compute <plan-file>",
		Short: "Compute time and fuel for a route file",
		Long: `Compute trip time and fuel for the legs in a YAML or JSON file.

Settings in the file are laid over the configured planner defaults. The plan
store is not used.

Examples:
  fuelplan compute route.yaml
  fuelplan compute route.json --fallback
  fuelplan compute route.yaml --dataset ./flightdata.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			pf, err := loadPlanFile(args[0], a.cfg.Planner.ToSettings())
			if err != nil {
				return err
			}

			resp, err := a.mediator.Send(a.context(cmd.Context()), &queries.ComputePlanQuery{
				Legs:     pf.Legs,
				Settings: pf.Settings,
				Fallback: fallback,
			})
			if err != nil {
				return fmt.Errorf("failed to compute plan: %w", err)
			}

			result := resp.(*queries.ComputePlanResponse)
			result.PlanName = pf.Name
			return writeComputation(cmd, result, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", false, "Ignore handbook data and use flat fuel flow")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full result as JSON")

	return cmd
}

func writeComputation(cmd *cobra.Command, resp *queries.ComputePlanResponse, jsonOutput bool) error {
	if jsonOutput {
		return prettyPrint(cmd.OutOrStdout(), resp)
	}

	units, err := resolveUnits(resp.Settings.FuelUnits)
	if err != nil {
		return err
	}
	printComputation(cmd.OutOrStdout(), resp, units)
	return nil
}
