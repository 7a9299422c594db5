package h3grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoToCellRejectsBadInput(t *testing.T) {
	_, err := GeoToCell(GeoCoord{Lat: 0, Lon: 0}, -1)
	assert.ErrorIs(t, err, ErrInvalidResolution)

	_, err = GeoToCell(GeoCoord{Lat: 1000, Lon: 0}, 5)
	assert.Error(t, err)
}

func TestGeoCellCenterConverges(t *testing.T) {
	in := GeoCoord{Lat: 0.523598776, Lon: 1.047197551} // 30N, 60E in radians
	for _, res := range []int{0, 2, 4, 6} {
		h, err := GeoToCell(in, res)
		require.NoError(t, err, "res %d", res)

		center, err := h.Geo()
		require.NoError(t, err, "res %d", res)

		h2, err := GeoToCell(center, res)
		require.NoError(t, err, "res %d", res)
		assert.Equal(t, h, h2, "GeoToCell(cell.Geo()) should reproduce the same cell at res %d", res)
	}
}

func TestGeoBoundaryVertexCountMatchesShape(t *testing.T) {
	in := GeoCoord{Lat: 0.1, Lon: 0.2}
	h, err := GeoToCell(in, 3)
	require.NoError(t, err)

	b, err := h.GeoBoundaryFor()
	require.NoError(t, err)

	want := NumHexVerts
	if h.IsPentagon() {
		want = NumPentVerts
	}
	assert.Len(t, b.Verts, want)
}

func TestGeoBoundaryContainsCellCenter(t *testing.T) {
	in := GeoCoord{Lat: 0.2, Lon: -0.4}
	h, err := GeoToCell(in, 4)
	require.NoError(t, err)

	center, err := h.Geo()
	require.NoError(t, err)

	b, err := h.GeoBoundaryFor()
	require.NoError(t, err)

	p := Polygon{Outer: b.Verts}
	assert.True(t, p.Contains(center), "cell boundary should contain its own center")
}
