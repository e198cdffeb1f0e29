package steps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/fuelplan-go/internal/domain/flightplan"
)

// getCellValueFromTable gets a cell value from a table row by column name
// It uses the first row (table.Rows[0]) as the header to find the column index
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return strings.TrimSpace(row.Cells[i].Value)
			}
			return ""
		}
	}

	return ""
}

// optionalFloat parses a cell that may be blank
func optionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", value, err)
	}
	return &f, nil
}

// parseLegTable reads legs from a table with the columns
// from | to | distance nm | altitude ft | time min (the last two optional)
func parseLegTable(table *godog.Table) ([]flightplan.Leg, error) {
	legs := make([]flightplan.Leg, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}

		distance, err := strconv.ParseFloat(getCellValueFromTable(table, row, "distance nm"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid distance: %w", i, err)
		}
		altitude, err := optionalFloat(getCellValueFromTable(table, row, "altitude ft"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		plannedTime, err := optionalFloat(getCellValueFromTable(table, row, "time min"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		legs = append(legs, flightplan.Leg{
			ID:                fmt.Sprintf("leg-%d", i),
			From:              getCellValueFromTable(table, row, "from"),
			To:                getCellValueFromTable(table, row, "to"),
			DistanceNM:        distance,
			PlannedAltitudeFt: altitude,
			PlannedTimeMin:    plannedTime,
		})
	}
	return legs, nil
}

// approxEqual compares to the two decimals the scenarios are written with
func approxEqual(expected, actual float64) bool {
	diff := expected - actual
	return diff < 0.01 && diff > -0.01
}
