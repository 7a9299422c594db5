package h3grid

import "math"

// triangleAreaRads computes the spherical excess (area in steradians) of
// the triangle a-b-c via L'Huilier's theorem, the standard formula for
// spherical triangle area from its three side lengths.
func triangleAreaRads(a, b, c GeoCoord) float64 {
	sideAB := greatCircleDistanceRads(a, b)
	sideBC := greatCircleDistanceRads(b, c)
	sideCA := greatCircleDistanceRads(c, a)

	s := (sideAB + sideBC + sideCA) / 2

	t := math.Tan(s/2) *
		math.Tan((s-sideAB)/2) *
		math.Tan((s-sideBC)/2) *
		math.Tan((s-sideCA)/2)
	if t < 0 {
		t = 0
	}
	return 4 * math.Atan(math.Sqrt(t))
}

// CellAreaRads2 returns h's area in steradians, by fanning triangles from
// its center to each pair of adjacent boundary vertices.
func (h Index) CellAreaRads2() (float64, error) {
	center, err := h.Geo()
	if err != nil {
		return 0, err
	}
	boundary, err := h.GeoBoundaryFor()
	if err != nil {
		return 0, err
	}
	n := len(boundary.Verts)
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += triangleAreaRads(boundary.Verts[i], boundary.Verts[j], center)
	}
	return area, nil
}

// CellAreaKm2 returns h's area in square kilometers.
func (h Index) CellAreaKm2() (float64, error) {
	rads2, err := h.CellAreaRads2()
	if err != nil {
		return 0, err
	}
	return rads2 * EarthRadiusKm * EarthRadiusKm, nil
}

// CellAreaM2 returns h's area in square meters.
func (h Index) CellAreaM2() (float64, error) {
	km2, err := h.CellAreaKm2()
	if err != nil {
		return 0, err
	}
	return km2 * 1_000_000, nil
}

// ExactEdgeLengthRads returns e's length in radians, by summing
// great-circle distances between consecutive boundary vertices.
func (e EdgeIndex) ExactEdgeLengthRads() (float64, error) {
	b, err := e.Boundary()
	if err != nil {
		return 0, err
	}
	length := 0.0
	for i := 0; i < len(b.Verts)-1; i++ {
		length += greatCircleDistanceRads(b.Verts[i], b.Verts[i+1])
	}
	return length, nil
}

// ExactEdgeLengthKm returns e's length in kilometers.
func (e EdgeIndex) ExactEdgeLengthKm() (float64, error) {
	rads, err := e.ExactEdgeLengthRads()
	if err != nil {
		return 0, err
	}
	return rads * EarthRadiusKm, nil
}
