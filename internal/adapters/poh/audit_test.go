package poh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/fuelplan-go/internal/adapters/poh"
	"github.com/andrescamacho/fuelplan-go/internal/domain/performance"
	"github.com/andrescamacho/fuelplan-go/test/helpers"
)

func TestAudit_FixtureIsClean(t *testing.T) {
	// Act
	report := poh.Audit(helpers.NewC182Dataset())

	// Assert
	assert.True(t, report.Clean())
	assert.Equal(t, []string{"6000", "S.L.", "10000"}, report.Altitudes)
	assert.Equal(t, 10, report.TotalRows)
	assert.Equal(t, 6, report.ClimbRows[performance.ClimbModeNormal])
	assert.Equal(t, 4, report.ClimbRows[performance.ClimbModeMax])
}

func TestAudit_FindsZeroPlaceholders(t *testing.T) {
	// Arrange
	ds := helpers.NewC182Dataset()
	block := &ds.CruisePerformance.DataByAltitude[0]
	block.DataByRPM[0].Performance[1].StdPlus20C = helpers.CruiseCell(0, 0, 0)

	// Act
	report := poh.Audit(ds)

	// Assert
	require.Len(t, report.ZeroValues, 1)
	zero := report.ZeroValues[0]
	assert.Equal(t, "6000", zero.Altitude)
	assert.Equal(t, 2400.0, zero.RPM)
	assert.Equal(t, 20.0, zero.ManifoldInHg)
	assert.Equal(t, performance.TempBandStdPlus20C, zero.Band)
	assert.False(t, report.Clean())
}

func TestAudit_NilDataset(t *testing.T) {
	// Act
	report := poh.Audit(nil)

	// Assert
	assert.True(t, report.Clean())
	assert.Empty(t, report.Altitudes)
}
