package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	alt   PressureAltitude
	label string
}

func (r row) altitudeFt() float64 {
	return r.alt.Feet()
}

func rows() []row {
	// Deliberately unsorted
	return []row{
		{AltitudeFt(4000), "4000"},
		{SeaLevel(), "SL"},
		{AltitudeFt(8000), "8000"},
	}
}

func TestInterpolateByAltitude_BetweenRows(t *testing.T) {
	br, ok := interpolateByAltitude(rows(), 6000)

	require.True(t, ok)
	assert.Equal(t, "4000", br.Lo.label)
	assert.Equal(t, "8000", br.Hi.label)
	assert.InDelta(t, 0.5, br.T, 1e-12)
}

func TestInterpolateByAltitude_ExactMatchUsesFirstBracket(t *testing.T) {
	br, ok := interpolateByAltitude(rows(), 4000)

	require.True(t, ok)
	assert.Equal(t, "SL", br.Lo.label)
	assert.Equal(t, "4000", br.Hi.label)
	assert.Equal(t, 1.0, br.T)
}

func TestInterpolateByAltitude_ClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		target    float64
		wantLabel string
		wantT     float64
	}{
		{"negative target is sea level", -1500, "SL", 0},
		{"above table", 25000, "8000", 1},
		{"far above table", 1e9, "8000", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br, ok := interpolateByAltitude(rows(), tt.target)

			require.True(t, ok)
			assert.Equal(t, tt.wantLabel, br.Lo.label)
			assert.Equal(t, tt.wantLabel, br.Hi.label)
			assert.Equal(t, tt.wantT, br.T)
		})
	}
}

func TestInterpolateByAltitude_BelowLowestRow(t *testing.T) {
	table := []row{{AltitudeFt(2000), "2000"}, {AltitudeFt(6000), "6000"}}

	br, ok := interpolateByAltitude(table, 500)

	require.True(t, ok)
	assert.Equal(t, "2000", br.Lo.label)
	assert.Equal(t, "2000", br.Hi.label)
	assert.Equal(t, 0.0, br.T)
}

func TestInterpolateByAltitude_DegenerateBracket(t *testing.T) {
	table := []row{{AltitudeFt(4000), "a"}, {AltitudeFt(4000), "b"}}

	br, ok := interpolateByAltitude(table, 4000)

	require.True(t, ok)
	assert.Equal(t, "a", br.Lo.label)
	assert.Equal(t, "b", br.Hi.label)
	assert.Equal(t, 0.0, br.T)
}

func TestInterpolateByAltitude_SingleRow(t *testing.T) {
	table := []row{{AltitudeFt(3000), "only"}}

	br, ok := interpolateByAltitude(table, 9000)

	require.True(t, ok)
	assert.Equal(t, "only", br.Lo.label)
	assert.Equal(t, "only", br.Hi.label)
}

func TestInterpolateByAltitude_Empty(t *testing.T) {
	_, ok := interpolateByAltitude([]row{}, 1000)

	assert.False(t, ok)
}

func TestInterpolateByAltitude_DoesNotReorderInput(t *testing.T) {
	table := rows()

	interpolateByAltitude(table, 1000)

	assert.Equal(t, "4000", table[0].label)
	assert.Equal(t, "SL", table[1].label)
}

func TestClosestBy(t *testing.T) {
	key := func(v float64) float64 { return v }

	tests := []struct {
		name  string
		items []float64
		want  float64
		found float64
	}{
		{"exact", []float64{2200, 2300, 2400}, 2300, 2300},
		{"nearest below", []float64{2200, 2400}, 2250, 2200},
		{"tie goes to first", []float64{2400, 2200}, 2300, 2400},
		{"tie goes to first reversed", []float64{2200, 2400}, 2300, 2200},
		{"outside range", []float64{2100, 2400}, 3000, 2400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := closestBy(tt.items, key, tt.want)

			require.True(t, ok)
			assert.Equal(t, tt.found, got)
		})
	}
}

func TestClosestBy_Empty(t *testing.T) {
	_, ok := closestBy([]float64{}, func(v float64) float64 { return v }, 1)

	assert.False(t, ok)
}
