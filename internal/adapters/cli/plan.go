package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	planCommands "github.com/andrescamacho/fuelplan-go/internal/application/planning/commands"
	planQueries "github.com/andrescamacho/fuelplan-go/internal/application/planning/queries"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// NewPlanCommand creates the plan command with subcommands
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage saved plans",
		Long: `Create, edit and compute plans kept in the plan store.

Commands that take a plan name fall back to the default plan set with
'fuelplan plan use'.

Examples:
  fuelplan plan create "KPAO to KMRY" --file route.yaml
  fuelplan plan add-leg --from KSNS --to KMRY --distance 12 --alt 3500
  fuelplan plan list
  fuelplan plan compute "KPAO to KMRY" --units gal`,
	}

	cmd.AddCommand(newPlanCreateCommand())
	cmd.AddCommand(newPlanAddLegCommand())
	cmd.AddCommand(newPlanRemoveLegCommand())
	cmd.AddCommand(newPlanSettingsCommand())
	cmd.AddCommand(newPlanListCommand())
	cmd.AddCommand(newPlanShowCommand())
	cmd.AddCommand(newPlanComputeCommand())
	cmd.AddCommand(newPlanDeleteCommand())
	cmd.AddCommand(newPlanUseCommand())

	return cmd
}

func newPlanCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a saved plan",
		Long: `Create a plan, optionally importing legs and settings from a file.

The name may come from the file's "name" field instead of the argument.

Examples:
  fuelplan plan create "Bay tour"
  fuelplan plan create --file route.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			create := &planCommands.CreatePlanCommand{}
			if file != "" {
				pf, err := loadPlanFile(file, a.cfg.Planner.ToSettings())
				if err != nil {
					return err
				}
				create.Name, create.Legs, create.Settings = pf.Name, pf.Legs, pf.Settings
			}
			if len(args) > 0 {
				create.Name = args[0]
			}

			resp, err := a.mediator.Send(a.context(cmd.Context()), create)
			if err != nil {
				return fmt.Errorf("failed to create plan: %w", err)
			}

			plan := resp.(*planCommands.CreatePlanResponse).Plan
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created plan %s with %d legs (%s)\n", plan.Name(), len(plan.Legs()), plan.ID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with legs and settings")

	return cmd
}

func newPlanAddLegCommand() *cobra.Command {
	var (
		leg                            flightplan.Leg
		altitude, plannedTime, rpm, mp float64
		band                           string
	)

	cmd := &cobra.Command{
		Use:   "add-leg [plan]",
		Short: "Append a leg to a plan",
		Long: `Append a leg to a saved plan.

Altitude carries over from the previous leg when omitted. A planned time
replaces the time derived from distance and speed.

Examples:
  fuelplan plan add-leg --from KPAO --to KSNS --distance 60 --alt 5500
  fuelplan plan add-leg "Bay tour" --from KSNS --to KMRY --distance 12 --time 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolvePlanName(args)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("alt") {
				leg.PlannedAltitudeFt = flightplan.Float(altitude)
			}
			if flags.Changed("time") {
				leg.PlannedTimeMin = flightplan.Float(plannedTime)
			}
			if flags.Changed("rpm") {
				leg.CruiseRPM = flightplan.Float(rpm)
			}
			if flags.Changed("mp") {
				leg.CruiseManifoldInHg = flightplan.Float(mp)
			}
			leg.TempBand = performance.TempBand(band)

			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.mediator.Send(a.context(cmd.Context()), &planCommands.UpdatePlanLegsCommand{
				PlanName: name,
				Action:   planCommands.LegActionAdd,
				Leg:      leg,
			})
			if err != nil {
				return fmt.Errorf("failed to add leg: %w", err)
			}

			plan := resp.(*planCommands.UpdatePlanLegsResponse).Plan
			legs := plan.Legs()
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added leg %s to %s (%d legs, %.1f nm)\n",
				legs[len(legs)-1].ID, plan.Name(), len(legs), plan.TotalDistanceNM())
			return nil
		},
	}

	cmd.Flags().StringVar(&leg.From, "from", "", "Departure waypoint")
	cmd.Flags().StringVar(&leg.To, "to", "", "Arrival waypoint")
	cmd.Flags().Float64Var(&leg.DistanceNM, "distance", 0, "Leg distance in nautical miles (required)")
	cmd.Flags().Float64Var(&altitude, "alt", 0, "Planned altitude in feet")
	cmd.Flags().Float64Var(&plannedTime, "time", 0, "Planned time in minutes")
	cmd.Flags().Float64Var(&rpm, "rpm", 0, "Cruise RPM for this leg")
	cmd.Flags().Float64Var(&mp, "mp", 0, "Cruise manifold pressure for this leg")
	cmd.Flags().StringVar(&band, "band", "", "Temperature band for this leg")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}

func newPlanRemoveLegCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-leg [plan] <leg-id>",
		Short: "Remove a leg from a plan",
		Long: `Remove a leg by its ID, as shown by 'fuelplan plan show'.

Example:
  fuelplan plan remove-leg "Bay tour" ksns-kmry-1a2b3c4d`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			legID := args[len(args)-1]
			name, err := resolvePlanName(args[:len(args)-1])
			if err != nil {
				return err
			}

			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.mediator.Send(a.context(cmd.Context()), &planCommands.UpdatePlanLegsCommand{
				PlanName: name,
				Action:   planCommands.LegActionRemove,
				LegID:    legID,
			})
			if err != nil {
				return fmt.Errorf("failed to remove leg: %w", err)
			}

			plan := resp.(*planCommands.UpdatePlanLegsResponse).Plan
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed leg %s from %s (%d legs left)\n", legID, plan.Name(), len(plan.Legs()))
			return nil
		},
	}

	return cmd
}

func newPlanSettingsCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "settings [plan]",
		Short: "Replace a plan's settings from a file",
		Long: `Replace the settings of a saved plan with the "settings" section of a
YAML or JSON file. Fields the file leaves out take the configured defaults.

Example:
  fuelplan plan settings "Bay tour" --file settings.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolvePlanName(args)
			if err != nil {
				return err
			}

			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			pf, err := loadPlanFile(file, a.cfg.Planner.ToSettings())
			if err != nil {
				return err
			}
			if pf.Settings == nil {
				return fmt.Errorf("%s has no settings section", file)
			}

			resp, err := a.mediator.Send(a.context(cmd.Context()), &planCommands.UpdatePlanSettingsCommand{
				PlanName: name,
				Settings: *pf.Settings,
			})
			if err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}

			plan := resp.(*planCommands.UpdatePlanSettingsResponse).Plan
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated settings of %s\n", plan.Name())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with a settings section (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newPlanListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.mediator.Send(a.context(cmd.Context()), &planQueries.ListPlansQuery{})
			if err != nil {
				return fmt.Errorf("failed to list plans: %w", err)
			}

			plans := resp.(*planQueries.ListPlansResponse).Plans
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved plans")
				return nil
			}

			defaultPlan := loadUserConfig().DefaultPlan
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "\tNAME\tLEGS\tDISTANCE\tUPDATED\n")
			for _, p := range plans {
				marker := ""
				if p.Name() == defaultPlan {
					marker = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%.1f nm\t%s\n",
					marker, p.Name(), len(p.Legs()), p.TotalDistanceNM(), p.UpdatedAt().Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	return cmd
}

func newPlanShowCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show [plan]",
		Short: "Show a saved plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolvePlanName(args)
			if err != nil {
				return err
			}

			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.mediator.Send(a.context(cmd.Context()), &planQueries.GetPlanQuery{PlanName: name})
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}

			plan := resp.(*planQueries.GetPlanResponse).Plan
			if jsonOutput {
				settings := plan.Settings()
				return prettyPrint(cmd.OutOrStdout(), planFile{
					Name:     plan.Name(),
					Legs:     plan.Legs(),
					Settings: &settings,
				})
			}

			units, err := resolveUnits(plan.Settings().FuelUnits)
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), plan, units)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the plan as a JSON plan file")

	return cmd
}

func newPlanComputeCommand() *cobra.Command {
	var (
		fallback   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "compute [plan]",
		Short: "Compute time and fuel for a saved plan",
		Long: `Compute trip time and fuel for a saved plan with its own settings.

Examples:
  fuelplan plan compute "Bay tour"
  fuelplan plan compute --fallback --units gal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolvePlanName(args)
			if err != nil {
				return err
			}

			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.mediator.Send(a.context(cmd.Context()), &planQueries.ComputeSavedPlanQuery{
				PlanName: name,
				Fallback: fallback,
			})
			if err != nil {
				return fmt.Errorf("failed to compute plan: %w", err)
			}

			return writeComputation(cmd, resp.(*planQueries.ComputePlanResponse), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", false, "Ignore handbook data and use flat fuel flow")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full result as JSON")

	return cmd
}

func newPlanDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <plan>",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.mediator.Send(a.context(cmd.Context()), &planCommands.DeletePlanCommand{PlanName: args[0]}); err != nil {
				return fmt.Errorf("failed to delete plan: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted plan %s\n", args[0])
			return nil
		},
	}

	return cmd
}

func newPlanUseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <plan>",
		Short: "Set the default plan",
		Long: `Set the plan used by plan commands when no name is given.

Example:
  fuelplan plan use "Bay tour"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			// Verify the plan exists before remembering it
			if _, err := a.mediator.Send(a.context(cmd.Context()), &planQueries.GetPlanQuery{PlanName: args[0]}); err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}

			handler, err := newUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.SetDefaultPlan(args[0]); err != nil {
				return fmt.Errorf("failed to save default plan: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default plan set to %s\n", args[0])
			return nil
		},
	}

	return cmd
}
