package helpers

import "github.com/andrescamacho/fuelplan-go/internal/domain/performance"

func climbPoint(alt performance.PressureAltitude, kias, fpm, timeMin, fuelGal, distNm float64) performance.ClimbPoint {
	return performance.ClimbPoint{
		PressureAltitudeFt: alt,
		ClimbSpeedKias:     kias,
		RateOfClimbFpm:     fpm,
		FromSeaLevel: performance.ClimbMetrics{
			TimeMin:     timeMin,
			FuelUsedGal: fuelGal,
			DistanceNm:  distNm,
		},
	}
}

// CruiseCell builds a temperature cell
func CruiseCell(bhp, ktas, gph float64) performance.CruiseCell {
	return performance.CruiseCell{BHPPercent: bhp, KTAS: ktas, GPH: gph}
}

// CruiseRow builds a manifold-pressure row from its three temperature cells
func CruiseRow(mp float64, cool, std, warm performance.CruiseCell) performance.CruiseRow {
	return performance.CruiseRow{
		ManifoldPressureInHg: mp,
		StdMinus20C:          cool,
		Std:                  std,
		StdPlus20C:           warm,
	}
}

// NewC182Dataset returns a small handbook dataset shaped like the Cessna
// 182S tables. Altitude blocks are deliberately listed out of order and the
// 10000 ft block only publishes two RPM settings.
func NewC182Dataset() *performance.Dataset {
	return &performance.Dataset{
		ClimbPerformance: performance.ClimbPerformance{
			TimeFuelDistanceToClimb: performance.TimeFuelDistanceToClimb{
				NormalClimb: &performance.ClimbTable{
					Conditions: "2400 RPM, 23 inHg, 90 KIAS, standard temperature",
					Data: []performance.ClimbPoint{
						climbPoint(performance.SeaLevel(), 90, 780, 0, 0, 0),
						climbPoint(performance.AltitudeFt(2000), 90, 720, 3, 1.0, 5),
						climbPoint(performance.AltitudeFt(4000), 90, 660, 6, 2.0, 10),
						climbPoint(performance.AltitudeFt(6000), 90, 590, 9, 3.0, 15),
						climbPoint(performance.AltitudeFt(8000), 90, 520, 13, 4.0, 22),
						climbPoint(performance.AltitudeFt(10000), 90, 450, 18, 5.5, 30),
					},
				},
				MaximumRateClimb: &performance.ClimbTable{
					Conditions: "2400 RPM, full throttle, 80 KIAS",
					Data: []performance.ClimbPoint{
						climbPoint(performance.SeaLevel(), 80, 920, 0, 0, 0),
						climbPoint(performance.AltitudeFt(4000), 79, 800, 5, 1.6, 7),
						climbPoint(performance.AltitudeFt(8000), 77, 670, 11, 3.4, 15),
						climbPoint(performance.AltitudeFt(12000), 75, 530, 19, 5.8, 27),
					},
				},
			},
		},
		CruisePerformance: performance.CruisePerformance{
			DataByAltitude: []performance.CruiseAltitudeBlock{
				{
					PressureAltitudeFt: performance.AltitudeFt(6000),
					DataByRPM: []performance.CruiseRPMBlock{
						{RPM: 2400, Performance: []performance.CruiseRow{
							CruiseRow(22, CruiseCell(78, 144, 14.4), CruiseCell(74, 142, 13.6), CruiseCell(70, 140, 12.9)),
							CruiseRow(20, CruiseCell(68, 136, 12.6), CruiseCell(65, 134, 12.0), CruiseCell(61, 132, 11.4)),
						}},
						{RPM: 2200, Performance: []performance.CruiseRow{
							CruiseRow(22, CruiseCell(70, 138, 13.0), CruiseCell(66, 136, 12.4), CruiseCell(63, 134, 11.8)),
							CruiseRow(20, CruiseCell(61, 130, 11.4), CruiseCell(58, 128, 10.8), CruiseCell(55, 126, 10.2)),
						}},
					},
				},
				{
					PressureAltitudeFt: performance.SeaLevel(),
					DataByRPM: []performance.CruiseRPMBlock{
						{RPM: 2400, Performance: []performance.CruiseRow{
							CruiseRow(23, CruiseCell(76, 138, 14.0), CruiseCell(72, 136, 13.2), CruiseCell(69, 134, 12.6)),
							CruiseRow(21, CruiseCell(67, 131, 12.4), CruiseCell(64, 129, 11.8), CruiseCell(61, 127, 11.2)),
						}},
						{RPM: 2200, Performance: []performance.CruiseRow{
							CruiseRow(23, CruiseCell(68, 132, 12.6), CruiseCell(65, 130, 12.0), CruiseCell(62, 128, 11.4)),
							CruiseRow(21, CruiseCell(60, 125, 11.2), CruiseCell(57, 123, 10.6), CruiseCell(54, 121, 10.0)),
						}},
					},
				},
				{
					PressureAltitudeFt: performance.AltitudeFt(10000),
					DataByRPM: []performance.CruiseRPMBlock{
						{RPM: 2400, Performance: []performance.CruiseRow{
							CruiseRow(20, CruiseCell(70, 146, 13.0), CruiseCell(67, 144, 12.4), CruiseCell(63, 142, 11.8)),
						}},
						{RPM: 2300, Performance: []performance.CruiseRow{
							CruiseRow(20, CruiseCell(66, 142, 12.2), CruiseCell(63, 140, 11.6), CruiseCell(60, 138, 11.0)),
						}},
					},
				},
			},
		},
	}
}
