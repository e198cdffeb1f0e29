package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 10.0, Lerp(10, 20, 0))
	assert.Equal(t, 20.0, Lerp(10, 20, 1))
	assert.InDelta(t, 12.5, Lerp(10, 20, 0.25), 1e-9)
	assert.InDelta(t, 15.0, Lerp(20, 10, 0.5), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5.0, 0, 10))
	assert.Equal(t, 10.0, Clamp(12.0, 0, 10))
	assert.Equal(t, 7, Clamp(7, 0, 10))
}

func TestMean(t *testing.T) {
	// Arrange
	values := []float64{13.5, 15, 16.5}

	// Act
	mean := Mean(values, 12)
	empty := Mean(nil, 12)

	// Assert
	assert.InDelta(t, 15.0, mean, 1e-9)
	assert.Equal(t, 12.0, empty)
}
