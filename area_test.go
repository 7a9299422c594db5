package h3grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellAreaPositiveAndShrinksWithResolution(t *testing.T) {
	in := GeoCoord{Lat: 0.3, Lon: 0.6}

	var prevKm2 float64
	for res := 0; res <= 4; res++ {
		h, err := GeoToCell(in, res)
		require.NoError(t, err)

		km2, err := h.CellAreaKm2()
		require.NoError(t, err)
		assert.Greater(t, km2, 0.0, "cell area should be positive at res %d", res)

		if res > 0 {
			assert.Less(t, km2, prevKm2, "finer resolution should have smaller area")
		}
		prevKm2 = km2
	}
}

func TestCellAreaM2IsKm2Scaled(t *testing.T) {
	h, err := GeoToCell(GeoCoord{Lat: 0.1, Lon: 0.1}, 5)
	require.NoError(t, err)

	km2, err := h.CellAreaKm2()
	require.NoError(t, err)
	m2, err := h.CellAreaM2()
	require.NoError(t, err)

	assert.InEpsilon(t, km2*1_000_000, m2, 1e-9)
}

func TestExactEdgeLengthPositive(t *testing.T) {
	h, err := GeoToCell(GeoCoord{Lat: 0.2, Lon: -0.3}, 4)
	require.NoError(t, err)

	e, err := NewDirectedEdge(h, 4)
	require.NoError(t, err)

	rads, err := e.ExactEdgeLengthRads()
	require.NoError(t, err)
	assert.Greater(t, rads, 0.0)

	km, err := e.ExactEdgeLengthKm()
	require.NoError(t, err)
	assert.InEpsilon(t, rads*EarthRadiusKm, km, 1e-9)
}
