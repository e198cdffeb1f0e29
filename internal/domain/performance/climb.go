package performance

import "github.com/andrescamacho/fuelplan-go/pkg/utils"

// ClimbFromSeaLevel returns the cumulative time, fuel and distance to climb
// from sea level to targetAltFt in the given mode, interpolated linearly
// between the bracketing table rows. ok is false when the dataset has no
// rows for the mode.
func ClimbFromSeaLevel(ds *Dataset, targetAltFt float64, mode ClimbMode) (ClimbMetrics, bool) {
	if ds == nil {
		return ClimbMetrics{}, false
	}
	br, ok := interpolateByAltitude(ds.ClimbTable(mode), targetAltFt)
	if !ok {
		return ClimbMetrics{}, false
	}

	lo, hi := br.Lo.FromSeaLevel, br.Hi.FromSeaLevel
	return ClimbMetrics{
		TimeMin:     utils.Lerp(lo.TimeMin, hi.TimeMin, br.T),
		FuelUsedGal: utils.Lerp(lo.FuelUsedGal, hi.FuelUsedGal, br.T),
		DistanceNm:  utils.Lerp(lo.DistanceNm, hi.DistanceNm, br.T),
	}, true
}

// ClimbBetween returns the climb segment from fromFt up to toFt as the
// difference of the two sea-level-referenced lookups. Each metric is floored
// at 0; the tables are expected to increase with altitude.
func ClimbBetween(ds *Dataset, fromFt, toFt float64, mode ClimbMode) (ClimbMetrics, bool) {
	to, ok := ClimbFromSeaLevel(ds, toFt, mode)
	if !ok {
		return ClimbMetrics{}, false
	}
	from, ok := ClimbFromSeaLevel(ds, fromFt, mode)
	if !ok {
		return ClimbMetrics{}, false
	}
	return ClimbMetrics{
		TimeMin:     max(0, to.TimeMin-from.TimeMin),
		FuelUsedGal: max(0, to.FuelUsedGal-from.FuelUsedGal),
		DistanceNm:  max(0, to.DistanceNm-from.DistanceNm),
	}, true
}
