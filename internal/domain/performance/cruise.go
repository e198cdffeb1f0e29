package performance

import "github.com/andrescamacho/fuelplan-go/pkg/utils"

// DefaultCruiseRPM is used when no RPM preference is configured
const DefaultCruiseRPM = 2400

// CruisePerformanceResult is the true airspeed and fuel flow for a power setting
type CruisePerformanceResult struct {
	KTAS float64 `json:"ktas"`
	GPH  float64 `json:"gph"`
}

// CruiseQuery describes the requested cruise power setting
type CruiseQuery struct {
	AltitudeFt float64
	RPM        float64
	// ManifoldInHg selects the nearest row when set; nil or 0 takes the
	// first row of the RPM block.
	ManifoldInHg *float64
	Band         TempBand
}

// CruiseAtAltitude looks up cruise speed and fuel flow. The RPM block and
// manifold-pressure row are chosen by nearest neighbour within each
// bracketing altitude block; only the altitude axis is interpolated.
func CruiseAtAltitude(ds *Dataset, q CruiseQuery) (CruisePerformanceResult, bool) {
	if ds == nil {
		return CruisePerformanceResult{}, false
	}
	br, ok := interpolateByAltitude(ds.CruisePerformance.DataByAltitude, q.AltitudeFt)
	if !ok {
		return CruisePerformanceResult{}, false
	}

	lo, loOK := q.pick(br.Lo)
	hi, hiOK := q.pick(br.Hi)
	switch {
	case !loOK && !hiOK:
		return CruisePerformanceResult{}, false
	case !hiOK:
		return lo, true
	case !loOK:
		return hi, true
	}
	return CruisePerformanceResult{
		KTAS: utils.Lerp(lo.KTAS, hi.KTAS, br.T),
		GPH:  utils.Lerp(lo.GPH, hi.GPH, br.T),
	}, true
}

// SelectRow returns the row chosen for q within one altitude block
func (q CruiseQuery) SelectRow(block CruiseAltitudeBlock) (CruiseRPMBlock, CruiseRow, bool) {
	rpmBlock, ok := closestBy(block.DataByRPM, func(b CruiseRPMBlock) float64 { return b.RPM }, q.RPM)
	if !ok || len(rpmBlock.Performance) == 0 {
		return rpmBlock, CruiseRow{}, false
	}

	row := rpmBlock.Performance[0]
	if q.ManifoldInHg != nil && *q.ManifoldInHg != 0 {
		row, _ = closestBy(rpmBlock.Performance,
			func(r CruiseRow) float64 { return r.ManifoldPressureInHg }, *q.ManifoldInHg)
	}
	return rpmBlock, row, true
}

func (q CruiseQuery) pick(block CruiseAltitudeBlock) (CruisePerformanceResult, bool) {
	_, row, ok := q.SelectRow(block)
	if !ok {
		return CruisePerformanceResult{}, false
	}
	cell := q.Band.Cell(row)
	return CruisePerformanceResult{KTAS: cell.KTAS, GPH: cell.GPH}, true
}
