package poh

import (
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

// ZeroPlaceholder is a cruise cell where a transcribed value was left at 0
type ZeroPlaceholder struct {
	Altitude     string
	RPM          float64
	ManifoldInHg float64
	Band         performance.TempBand
	Cell         performance.CruiseCell
}

// AuditReport summarises the cruise tables of a dataset
type AuditReport struct {
	Altitudes  []string
	TotalRows  int
	ClimbRows  map[performance.ClimbMode]int
	ZeroValues []ZeroPlaceholder
}

// Clean reports whether no zero placeholders were found
func (r AuditReport) Clean() bool {
	return len(r.ZeroValues) == 0
}

var auditBands = []performance.TempBand{
	performance.TempBandStdMinus20C,
	performance.TempBandStd,
	performance.TempBandStdPlus20C,
}

// Audit lists the cruise altitudes of ds and every cell holding a zero
// horsepower, speed or fuel flow. The planner does not treat zeros as
// missing, so these cells produce zero-speed or zero-flow results.
func Audit(ds *performance.Dataset) AuditReport {
	report := AuditReport{ClimbRows: map[performance.ClimbMode]int{}}
	if ds == nil {
		return report
	}

	for _, mode := range []performance.ClimbMode{performance.ClimbModeNormal, performance.ClimbModeMax} {
		report.ClimbRows[mode] = len(ds.ClimbTable(mode))
	}

	for _, block := range ds.CruisePerformance.DataByAltitude {
		altitude := block.PressureAltitudeFt.String()
		report.Altitudes = append(report.Altitudes, altitude)

		for _, rpm := range block.DataByRPM {
			for _, row := range rpm.Performance {
				report.TotalRows++
				for _, band := range auditBands {
					cell := band.Cell(row)
					if cell.BHPPercent == 0 || cell.KTAS == 0 || cell.GPH == 0 {
						report.ZeroValues = append(report.ZeroValues, ZeroPlaceholder{
							Altitude:     altitude,
							RPM:          rpm.RPM,
							ManifoldInHg: row.ManifoldPressureInHg,
							Band:         band,
							Cell:         cell,
						})
					}
				}
			}
		}
	}

	return report
}
