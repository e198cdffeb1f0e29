package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/metrics"
	"github.com/andrescamacho/fuelplan-go/internal/application/planning/queries"
	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
	"github.com/andrescamacho/fuelplan-go/internal/domain/shared"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// prettyPrint writes v as indented JSON
func prettyPrint(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// formatMinutes renders minutes as "2h 44m"
func formatMinutes(min float64) string {
	total := int(math.Round(min))
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}

func formatOptional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

// printComputation writes the leg table, fuel summary, cruise settings and
// fuel profile of a computed plan
func printComputation(w io.Writer, resp *queries.ComputePlanResponse, units shared.FuelUnits) {
	title := resp.PlanName
	if title == "" {
		title = "Plan"
	}
	source := "flat fuel flow"
	if resp.Mode == metrics.ModeDataset {
		source = "handbook tables (" + resp.DatasetSource + ")"
	}
	fmt.Fprintf(w, "%s - %s\n\n", title, source)

	printLegs(w, resp, units)
	fmt.Fprintln(w)
	printSummary(w, resp.Result.Summary, resp.LandingFuelGal, units)

	if len(resp.CruiseSettings) > 0 {
		fmt.Fprintln(w)
		printCruiseSettings(w, resp.CruiseSettings)
	}

	fmt.Fprintln(w)
	printProfile(w, resp.Profile, units)
}

func printLegs(w io.Writer, resp *queries.ComputePlanResponse, units shared.FuelUnits) {
	tw := newTable(w)
	fmt.Fprintf(tw, "#\tFROM\tTO\tDIST\tTIME\tFUEL\tGPH\tKTAS\tCLIMB\n")
	for i, leg := range resp.Result.Legs {
		from, to := "", ""
		if i+1 < len(resp.Profile) {
			from, to = resp.Profile[i].Waypoint, resp.Profile[i+1].Waypoint
		}
		dist := 0.0
		if i < len(resp.Result.Cumulative) {
			dist = resp.Result.Cumulative[i].DistanceNM
			if i > 0 {
				dist -= resp.Result.Cumulative[i-1].DistanceNM
			}
		}
		climb := "-"
		if leg.Climb != nil {
			climb = fmt.Sprintf("%.1f min / %s", leg.Climb.TimeMin, units.Format(leg.Climb.FuelGal))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f nm\t%s\t%s\t%.1f\t%.0f\t%s\n",
			i+1, from, to, dist, formatMinutes(leg.TimeMin), units.Format(leg.FuelGal),
			leg.AverageGPH, leg.KTASUsed, climb)
	}
	tw.Flush()
}

func printSummary(w io.Writer, s flightplan.PlanSummary, landingGal float64, units shared.FuelUnits) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Trip time:\t%s\n", formatMinutes(s.TotalTimeMin))
	fmt.Fprintf(tw, "Trip fuel:\t%s\n", units.Format(s.TotalFuelGal))
	fmt.Fprintf(tw, "Taxi fuel:\t%s\n", units.Format(s.TaxiFuelGal))
	fmt.Fprintf(tw, "Reserve fuel:\t%s\n", units.Format(s.ReserveFuelGal))
	if s.HoldingFuelGal != nil {
		fmt.Fprintf(tw, "Holding fuel:\t%s\n", units.Format(*s.HoldingFuelGal))
	}
	if s.ContingencyFuelGal != nil {
		fmt.Fprintf(tw, "Contingency fuel:\t%s\n", units.Format(*s.ContingencyFuelGal))
	}
	fmt.Fprintf(tw, "Takeoff fuel required:\t%s\n", units.Format(s.TakeoffFuelRequiredGal))
	fmt.Fprintf(tw, "Fuel at landing:\t%s\n", units.Format(landingGal))
	tw.Flush()
}

func printCruiseSettings(w io.Writer, settings []queries.LegCruiseSetting) {
	tw := newTable(w)
	fmt.Fprintf(tw, "LEG\tALT\tRPM\tMP\tTEMP\tKTAS\tGPH\n")
	for _, s := range settings {
		fmt.Fprintf(tw, "%s\t%.0f ft\t%.0f\t%s\t%s\t%s\t%s\n",
			s.LegID, s.AltitudeFt, s.RPM,
			formatOptional(s.ManifoldInHg, "%.0f in"), s.Band.Label(),
			formatOptional(s.KTAS, "%.0f"), formatOptional(s.GPH, "%.1f"))
	}
	tw.Flush()
}

func printProfile(w io.Writer, profile []flightplan.ProfilePoint, units shared.FuelUnits) {
	tw := newTable(w)
	fmt.Fprintf(tw, "WAYPOINT\tDIST\tELAPSED\tREMAINING\tFUEL\n")
	for _, p := range profile {
		fmt.Fprintf(tw, "%s\t%.1f nm\t%s\t%s\t%s\n",
			p.Waypoint, p.DistanceNM, formatMinutes(p.ElapsedMin),
			formatMinutes(p.TimeRemainingMin), units.Format(p.FuelRemainingGal))
	}
	tw.Flush()
}

// printPlan writes a saved plan's legs and key settings
func printPlan(w io.Writer, plan *flightplan.Plan, units shared.FuelUnits) {
	settings := plan.Settings()
	fmt.Fprintf(w, "%s (%s)\n", plan.Name(), plan.ID())
	fmt.Fprintf(w, "Updated: %s\n\n", plan.UpdatedAt().Format("2006-01-02 15:04"))

	tw := newTable(w)
	fmt.Fprintf(tw, "ID\tFROM\tTO\tDIST\tALT\tTIME\n")
	for _, leg := range plan.Legs() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f nm\t%s\t%s\n",
			leg.ID, leg.From, leg.To, leg.DistanceNM,
			formatOptional(leg.PlannedAltitudeFt, "%.0f ft"),
			formatOptional(leg.PlannedTimeMin, "%.0f min"))
	}
	tw.Flush()

	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintf(tw, "Total distance:\t%.1f nm\n", plan.TotalDistanceNM())
	fmt.Fprintf(tw, "Starting fuel:\t%s\n", formatOptionalFuel(settings.StartingFuelGal, units))
	fmt.Fprintf(tw, "Reserve:\t%.0f min\n", settings.ReserveMinutes)
	fmt.Fprintf(tw, "Taxi fuel:\t%s\n", units.Format(settings.TaxiFuelGal))
	fmt.Fprintf(tw, "Cruise power:\t%s rpm, %s\n",
		formatOptional(settings.CruiseRPM, "%.0f"), formatOptional(settings.CruiseManifoldInHg, "%.0f in"))
	tw.Flush()
}

func formatOptionalFuel(gal *float64, units shared.FuelUnits) string {
	if gal == nil {
		return "-"
	}
	return units.Format(*gal)
}
