package performance

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SeaLevelLabel is the handbook notation for a sea-level pressure altitude.
const SeaLevelLabel = "S.L."

// PressureAltitude is a table row altitude. Handbook tables mark the first
// row "S.L." instead of 0; both compare as 0 ft.
type PressureAltitude struct {
	feet     float64
	seaLevel bool
}

// SeaLevel returns the sea-level sentinel altitude
func SeaLevel() PressureAltitude {
	return PressureAltitude{seaLevel: true}
}

// AltitudeFt returns a numeric pressure altitude
func AltitudeFt(ft float64) PressureAltitude {
	return PressureAltitude{feet: ft}
}

// Feet returns the altitude in feet, mapping sea level to 0
func (a PressureAltitude) Feet() float64 {
	if a.seaLevel {
		return 0
	}
	return a.feet
}

// IsSeaLevel reports whether the row was published as "S.L."
func (a PressureAltitude) IsSeaLevel() bool {
	return a.seaLevel
}

func (a PressureAltitude) String() string {
	if a.seaLevel {
		return SeaLevelLabel
	}
	return strconv.FormatFloat(a.feet, 'f', -1, 64)
}

// MarshalJSON writes the sentinel back as "S.L." so datasets round-trip
func (a PressureAltitude) MarshalJSON() ([]byte, error) {
	if a.seaLevel {
		return json.Marshal(SeaLevelLabel)
	}
	return json.Marshal(a.feet)
}

// UnmarshalJSON accepts either a number or the "S.L." string
func (a *PressureAltitude) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		if label != SeaLevelLabel {
			return fmt.Errorf("invalid pressure altitude %q: expected a number or %q", label, SeaLevelLabel)
		}
		*a = SeaLevel()
		return nil
	}

	var ft float64
	if err := json.Unmarshal(data, &ft); err != nil {
		return fmt.Errorf("invalid pressure altitude %s: %w", string(data), err)
	}
	*a = AltitudeFt(ft)
	return nil
}

// ClimbMode selects which climb table is read
type ClimbMode string

const (
	ClimbModeNormal ClimbMode = "normal"
	ClimbModeMax    ClimbMode = "max"
)

// TempBand selects the temperature column of a cruise row
type TempBand string

const (
	TempBandStdMinus20C TempBand = "stdMinus20C"
	TempBandStd         TempBand = "std"
	TempBandStdPlus20C  TempBand = "stdPlus20C"
)

// Label returns the column heading used in the handbook
func (b TempBand) Label() string {
	switch b {
	case TempBandStdMinus20C:
		return "ISA -20°C"
	case TempBandStdPlus20C:
		return "ISA +20°C"
	default:
		return "ISA"
	}
}

// IsValid reports whether b names one of the three published columns
func (b TempBand) IsValid() bool {
	switch b {
	case TempBandStdMinus20C, TempBandStd, TempBandStdPlus20C:
		return true
	}
	return false
}

// ParseTempBand parses a band name; the empty string is the standard column
func ParseTempBand(s string) (TempBand, error) {
	if s == "" {
		return TempBandStd, nil
	}
	b := TempBand(s)
	if !b.IsValid() {
		return TempBandStd, fmt.Errorf("invalid temperature band: %s", s)
	}
	return b, nil
}

// ParseClimbMode parses a climb mode name; the empty string is normal climb
func ParseClimbMode(s string) (ClimbMode, error) {
	switch ClimbMode(s) {
	case "", ClimbModeNormal:
		return ClimbModeNormal, nil
	case ClimbModeMax:
		return ClimbModeMax, nil
	}
	return ClimbModeNormal, fmt.Errorf("invalid climb mode: %s", s)
}

// Dataset is the handbook performance data consumed by the planner.
// It is loaded and validated outside this package and treated as read-only.
type Dataset struct {
	ClimbPerformance  ClimbPerformance  `json:"climbPerformance"`
	CruisePerformance CruisePerformance `json:"cruisePerformance"`
}

type ClimbPerformance struct {
	Conditions              map[string]any          `json:"conditions,omitempty"`
	TimeFuelDistanceToClimb TimeFuelDistanceToClimb `json:"timeFuelDistanceToClimb"`
}

type TimeFuelDistanceToClimb struct {
	Notes            []string    `json:"notes,omitempty"`
	MaximumRateClimb *ClimbTable `json:"maximumRateClimb,omitempty"`
	NormalClimb      *ClimbTable `json:"normalClimb,omitempty"`
}

type ClimbTable struct {
	Conditions string       `json:"conditions"`
	Data       []ClimbPoint `json:"data"`
}

// ClimbPoint is one row of a time/fuel/distance-to-climb table
type ClimbPoint struct {
	PressureAltitudeFt PressureAltitude `json:"pressureAltitudeFt"`
	ClimbSpeedKias     float64          `json:"climbSpeedKias"`
	RateOfClimbFpm     float64          `json:"rateOfClimbFpm"`
	FromSeaLevel       ClimbMetrics     `json:"fromSeaLevel"`
}

// ClimbMetrics are cumulative values for a climb starting at sea level
type ClimbMetrics struct {
	TimeMin     float64 `json:"timeMin"`
	FuelUsedGal float64 `json:"fuelUsedGal"`
	DistanceNm  float64 `json:"distanceNm"`
}

type CruisePerformance struct {
	Conditions     map[string]any        `json:"conditions,omitempty"`
	DataByAltitude []CruiseAltitudeBlock `json:"dataByAltitude"`
}

type CruiseAltitudeBlock struct {
	PressureAltitudeFt PressureAltitude `json:"pressureAltitudeFt"`
	DataByRPM          []CruiseRPMBlock `json:"dataByRpm"`
}

type CruiseRPMBlock struct {
	RPM         float64     `json:"rpm"`
	Performance []CruiseRow `json:"performance"`
}

// CruiseRow is one manifold-pressure line of a cruise power table
type CruiseRow struct {
	ManifoldPressureInHg float64    `json:"manifoldPressureInHg"`
	StdMinus20C          CruiseCell `json:"stdMinus20C"`
	Std                  CruiseCell `json:"std"`
	StdPlus20C           CruiseCell `json:"stdPlus20C"`
}

type CruiseCell struct {
	BHPPercent float64 `json:"bhpPercent"`
	KTAS       float64 `json:"ktas"`
	GPH        float64 `json:"gph"`
}

// Cell returns the column of row selected by the band. Unknown bands read
// the standard column.
func (b TempBand) Cell(row CruiseRow) CruiseCell {
	switch b {
	case TempBandStdMinus20C:
		return row.StdMinus20C
	case TempBandStdPlus20C:
		return row.StdPlus20C
	default:
		return row.Std
	}
}

// ClimbTable returns the rows for mode, or nil when the dataset has none
func (d *Dataset) ClimbTable(mode ClimbMode) []ClimbPoint {
	tfd := d.ClimbPerformance.TimeFuelDistanceToClimb
	var table *ClimbTable
	if mode == ClimbModeMax {
		table = tfd.MaximumRateClimb
	} else {
		table = tfd.NormalClimb
	}
	if table == nil {
		return nil
	}
	return table.Data
}

func (p ClimbPoint) altitudeFt() float64 {
	return p.PressureAltitudeFt.Feet()
}

func (b CruiseAltitudeBlock) altitudeFt() float64 {
	return b.PressureAltitudeFt.Feet()
}
