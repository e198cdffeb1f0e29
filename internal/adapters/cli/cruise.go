package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/fuelplan-go/internal/application/planning/queries"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// NewCruiseCommand creates the cruise table lookup command
func NewCruiseCommand() *cobra.Command {
	var (
		altitude float64
		rpm      float64
		manifold float64
		band     string
	)

	cmd := &cobra.Command{
		Use:   "cruise",
		Short: "Look up cruise speed and fuel flow",
		Long: `Look up true airspeed and fuel flow in the handbook cruise tables.

Altitudes between table rows are interpolated. Without --mp the first row of
the RPM block is used.

Examples:
  fuelplan cruise --alt 6000
  fuelplan cruise --alt 6500 --rpm 2300 --mp 21 --band stdPlus20C`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			query := &queries.CruiseLookupQuery{
				AltitudeFt: altitude,
				RPM:        rpm,
				Band:       performance.TempBand(band),
			}
			if cmd.Flags().Changed("mp") {
				query.ManifoldInHg = &manifold
			}

			resp, err := a.mediator.Send(a.context(cmd.Context()), query)
			if err != nil {
				return fmt.Errorf("cruise lookup failed: %w", err)
			}
			result := resp.(*queries.CruiseLookupResponse)

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "Altitude:\t%.0f ft\n", result.AltitudeFt)
			fmt.Fprintf(w, "Power:\t%.0f rpm, %s\n", result.RPM, formatOptional(result.ManifoldInHg, "%.0f in"))
			fmt.Fprintf(w, "Temperature:\t%s\n", result.Band.Label())
			fmt.Fprintf(w, "True airspeed:\t%.0f kt\n", result.KTAS)
			fmt.Fprintf(w, "Fuel flow:\t%.1f gph\n", result.GPH)
			fmt.Fprintf(w, "Dataset:\t%s\n", result.DatasetSource)
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&altitude, "alt", 0, "Pressure altitude in feet (required)")
	cmd.Flags().Float64Var(&rpm, "rpm", performance.DefaultCruiseRPM, "Engine RPM")
	cmd.Flags().Float64Var(&manifold, "mp", 0, "Manifold pressure in inHg")
	cmd.Flags().StringVar(&band, "band", string(performance.TempBandStd), "Temperature band: stdMinus20C, std or stdPlus20C")
	_ = cmd.MarkFlagRequired("alt")

	return cmd
}
