package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/poh"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// NewPOHCommand creates the handbook dataset command with subcommands
func NewPOHCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poh",
		Short: "Inspect handbook performance data",
		Long: `Inspect the handbook (POH) performance dataset used by the planner.

Examples:
  fuelplan poh check
  fuelplan poh check ./flightdata.json`,
	}

	cmd.AddCommand(newPOHCheckCommand())

	return cmd
}

func newPOHCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [source]",
		Short: "Validate a dataset and list zero placeholders",
		Long: `Load a dataset, validate its schema and list every cruise cell whose
horsepower, speed or fuel flow is 0. The planner uses such values as they are,
so a zero left over from transcription shows up as a zero-speed leg.

The command exits with an error when placeholders are found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			source := a.defaultSource()
			if len(args) > 0 {
				source = args[0]
			}

			ds, err := a.datasets.Load(a.context(cmd.Context()), source)
			if err != nil {
				return err
			}

			report := poh.Audit(ds)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dataset: %s\n", source)
			fmt.Fprintf(out, "Cruise altitudes: %s\n", strings.Join(report.Altitudes, ", "))
			fmt.Fprintf(out, "Cruise rows: %d\n", report.TotalRows)
			fmt.Fprintf(out, "Climb rows: %d normal, %d maximum\n",
				report.ClimbRows[performance.ClimbModeNormal], report.ClimbRows[performance.ClimbModeMax])

			if report.Clean() {
				fmt.Fprintln(out, "✓ No zero placeholders")
				return nil
			}

			fmt.Fprintln(out)
			w := newTable(out)
			fmt.Fprintf(w, "ALTITUDE\tRPM\tMP\tTEMP\tBHP%%\tKTAS\tGPH\n")
			for _, z := range report.ZeroValues {
				fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%s\t%.0f\t%.0f\t%.1f\n",
					z.Altitude, z.RPM, z.ManifoldInHg, z.Band.Label(), z.Cell.BHPPercent, z.Cell.KTAS, z.Cell.GPH)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			return fmt.Errorf("%d zero placeholders found", len(report.ZeroValues))
		},
	}

	return cmd
}
