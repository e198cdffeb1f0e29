package poh

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// Raw handbook documents are decoded into pointer-typed DTOs first so that a
// missing number can be told apart from a published zero. Only after the
// document passes validation is it normalised into a performance.Dataset.

type rawDataset struct {
	ClimbPerformance  *rawClimbPerformance  `json:"climbPerformance" validate:"required"`
	CruisePerformance *rawCruisePerformance `json:"cruisePerformance" validate:"required"`
}

type rawClimbPerformance struct {
	Conditions              map[string]any              `json:"conditions,omitempty"`
	MaximumRateOfClimb      any                         `json:"maximumRateOfClimb,omitempty"`
	TimeFuelDistanceToClimb *rawTimeFuelDistanceToClimb `json:"timeFuelDistanceToClimb" validate:"required"`
}

type rawTimeFuelDistanceToClimb struct {
	Notes            []string       `json:"notes,omitempty"`
	MaximumRateClimb *rawClimbTable `json:"maximumRateClimb,omitempty" validate:"omitempty"`
	NormalClimb      *rawClimbTable `json:"normalClimb,omitempty" validate:"omitempty"`
}

type rawClimbTable struct {
	Conditions *string         `json:"conditions" validate:"required"`
	Data       []rawClimbPoint `json:"data" validate:"required,dive"`
}

type rawClimbPoint struct {
	PressureAltitudeFt *performance.PressureAltitude `json:"pressureAltitudeFt" validate:"required"`
	ClimbSpeedKias     *float64                      `json:"climbSpeedKias" validate:"required"`
	RateOfClimbFpm     *float64                      `json:"rateOfClimbFpm" validate:"required"`
	FromSeaLevel       *rawClimbMetrics              `json:"fromSeaLevel" validate:"required"`
}

type rawClimbMetrics struct {
	TimeMin     *float64 `json:"timeMin" validate:"required"`
	FuelUsedGal *float64 `json:"fuelUsedGal" validate:"required"`
	DistanceNm  *float64 `json:"distanceNm" validate:"required"`
}

type rawCruisePerformance struct {
	Conditions     map[string]any           `json:"conditions,omitempty"`
	DataByAltitude []rawCruiseAltitudeBlock `json:"dataByAltitude" validate:"required,dive"`
}

type rawCruiseAltitudeBlock struct {
	PressureAltitudeFt *performance.PressureAltitude `json:"pressureAltitudeFt" validate:"required"`
	DataByRPM          []rawCruiseRPMBlock           `json:"dataByRpm" validate:"required,dive"`
}

type rawCruiseRPMBlock struct {
	RPM         *float64       `json:"rpm" validate:"required"`
	Performance []rawCruiseRow `json:"performance" validate:"required,dive"`
}

type rawCruiseRow struct {
	ManifoldPressureInHg *float64       `json:"manifoldPressureInHg" validate:"required"`
	StdMinus20C          *rawCruiseCell `json:"stdMinus20C" validate:"required"`
	Std                  *rawCruiseCell `json:"std" validate:"required"`
	StdPlus20C           *rawCruiseCell `json:"stdPlus20C" validate:"required"`
}

// rawCruiseCell accepts either "bhpPercent" or the older "bhp" key
type rawCruiseCell struct {
	KTAS       *float64 `json:"ktas" validate:"required"`
	GPH        *float64 `json:"gph" validate:"required"`
	BHPPercent *float64 `json:"bhpPercent,omitempty" validate:"required_without=BHP"`
	BHP        *float64 `json:"bhp,omitempty" validate:"required_without=BHPPercent"`
}

var schemaValidator = newSchemaValidator()

func newSchemaValidator() *validator.Validate {
	v := validator.New()

	// Report document paths using the JSON keys rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Parse decodes and validates a handbook performance document
func Parse(data []byte) (*performance.Dataset, error) {
	var raw rawDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schemaValidator.Struct(&raw); err != nil {
		return nil, formatSchemaError(err)
	}

	return raw.normalize(), nil
}

// SchemaIssue is one validation failure located by its document path
type SchemaIssue struct {
	Path string
	Rule string
}

func (i SchemaIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Rule)
}

// SchemaError lists every issue found in a rejected document
type SchemaError struct {
	Issues []SchemaIssue
}

func (e *SchemaError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("document does not match the handbook schema:\n  %s", strings.Join(lines, "\n  "))
}

func formatSchemaError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	issues := make([]SchemaIssue, 0, len(validationErrs))
	for _, e := range validationErrs {
		// Drop the root type name so paths read like the document
		path := e.Namespace()
		if idx := strings.Index(path, "."); idx >= 0 {
			path = path[idx+1:]
		}
		issues = append(issues, SchemaIssue{Path: path, Rule: describeRule(e)})
	}
	return &SchemaError{Issues: issues}
}

func describeRule(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return "expected either 'bhpPercent' or 'bhp'"
	default:
		return "failed " + e.Tag()
	}
}

func (r *rawDataset) normalize() *performance.Dataset {
	ds := &performance.Dataset{}

	climb := r.ClimbPerformance
	tfd := climb.TimeFuelDistanceToClimb
	ds.ClimbPerformance = performance.ClimbPerformance{
		Conditions: climb.Conditions,
		TimeFuelDistanceToClimb: performance.TimeFuelDistanceToClimb{
			Notes:            tfd.Notes,
			MaximumRateClimb: tfd.MaximumRateClimb.normalize(),
			NormalClimb:      tfd.NormalClimb.normalize(),
		},
	}

	cruise := r.CruisePerformance
	blocks := make([]performance.CruiseAltitudeBlock, len(cruise.DataByAltitude))
	for i, block := range cruise.DataByAltitude {
		blocks[i] = block.normalize()
	}
	ds.CruisePerformance = performance.CruisePerformance{
		Conditions:     cruise.Conditions,
		DataByAltitude: blocks,
	}

	return ds
}

func (t *rawClimbTable) normalize() *performance.ClimbTable {
	if t == nil {
		return nil
	}
	points := make([]performance.ClimbPoint, len(t.Data))
	for i, p := range t.Data {
		points[i] = performance.ClimbPoint{
			PressureAltitudeFt: *p.PressureAltitudeFt,
			ClimbSpeedKias:     *p.ClimbSpeedKias,
			RateOfClimbFpm:     *p.RateOfClimbFpm,
			FromSeaLevel: performance.ClimbMetrics{
				TimeMin:     *p.FromSeaLevel.TimeMin,
				FuelUsedGal: *p.FromSeaLevel.FuelUsedGal,
				DistanceNm:  *p.FromSeaLevel.DistanceNm,
			},
		}
	}
	return &performance.ClimbTable{Conditions: *t.Conditions, Data: points}
}

func (b rawCruiseAltitudeBlock) normalize() performance.CruiseAltitudeBlock {
	rpms := make([]performance.CruiseRPMBlock, len(b.DataByRPM))
	for i, rpm := range b.DataByRPM {
		rows := make([]performance.CruiseRow, len(rpm.Performance))
		for j, row := range rpm.Performance {
			rows[j] = performance.CruiseRow{
				ManifoldPressureInHg: *row.ManifoldPressureInHg,
				StdMinus20C:          row.StdMinus20C.normalize(),
				Std:                  row.Std.normalize(),
				StdPlus20C:           row.StdPlus20C.normalize(),
			}
		}
		rpms[i] = performance.CruiseRPMBlock{RPM: *rpm.RPM, Performance: rows}
	}
	return performance.CruiseAltitudeBlock{
		PressureAltitudeFt: *b.PressureAltitudeFt,
		DataByRPM:          rpms,
	}
}

func (c *rawCruiseCell) normalize() performance.CruiseCell {
	bhp := c.BHPPercent
	if bhp == nil {
		bhp = c.BHP
	}
	return performance.CruiseCell{BHPPercent: *bhp, KTAS: *c.KTAS, GPH: *c.GPH}
}
