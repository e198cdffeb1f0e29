package performance_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
)

func TestPressureAltitude_UnmarshalJSON(t *testing.T) {
	var rows []performance.PressureAltitude

	err := json.Unmarshal([]byte(`["S.L.", 2000, 4500.5]`), &rows)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].IsSeaLevel())
	assert.Equal(t, 0.0, rows[0].Feet())
	assert.Equal(t, 2000.0, rows[1].Feet())
	assert.Equal(t, 4500.5, rows[2].Feet())
}

func TestPressureAltitude_RejectsUnknownLabel(t *testing.T) {
	var alt performance.PressureAltitude

	err := json.Unmarshal([]byte(`"MSL"`), &alt)

	assert.Error(t, err)
}

func TestPressureAltitude_MarshalKeepsSentinel(t *testing.T) {
	out, err := json.Marshal([]performance.PressureAltitude{performance.SeaLevel(), performance.AltitudeFt(6000)})

	require.NoError(t, err)
	assert.JSONEq(t, `["S.L.", 6000]`, string(out))
}

func TestTempBand_Cell(t *testing.T) {
	row := performance.CruiseRow{
		StdMinus20C: performance.CruiseCell{KTAS: 1},
		Std:         performance.CruiseCell{KTAS: 2},
		StdPlus20C:  performance.CruiseCell{KTAS: 3},
	}

	assert.Equal(t, 1.0, performance.TempBandStdMinus20C.Cell(row).KTAS)
	assert.Equal(t, 2.0, performance.TempBandStd.Cell(row).KTAS)
	assert.Equal(t, 3.0, performance.TempBandStdPlus20C.Cell(row).KTAS)
	assert.Equal(t, 2.0, performance.TempBand("").Cell(row).KTAS)
}

func TestParseTempBand(t *testing.T) {
	band, err := performance.ParseTempBand("")
	require.NoError(t, err)
	assert.Equal(t, performance.TempBandStd, band)

	band, err = performance.ParseTempBand("stdPlus20C")
	require.NoError(t, err)
	assert.Equal(t, performance.TempBandStdPlus20C, band)

	_, err = performance.ParseTempBand("hot")
	assert.Error(t, err)
}

func TestParseClimbMode(t *testing.T) {
	mode, err := performance.ParseClimbMode("")
	require.NoError(t, err)
	assert.Equal(t, performance.ClimbModeNormal, mode)

	mode, err = performance.ParseClimbMode("max")
	require.NoError(t, err)
	assert.Equal(t, performance.ClimbModeMax, mode)

	_, err = performance.ParseClimbMode("cruise-climb")
	assert.Error(t, err)
}
