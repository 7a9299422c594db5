package h3grid

import "testing"

func TestPointInRingSquare(t *testing.T) {
	square := []GeoCoord{
		{Lat: -0.1, Lon: -0.1},
		{Lat: -0.1, Lon: 0.1},
		{Lat: 0.1, Lon: 0.1},
		{Lat: 0.1, Lon: -0.1},
	}
	if !pointInRing(GeoCoord{Lat: 0, Lon: 0}, square) {
		t.Fatalf("center of square should be inside")
	}
	if pointInRing(GeoCoord{Lat: 1, Lon: 1}, square) {
		t.Fatalf("point far outside the square should not be inside")
	}
}

func TestPolygonContainsRespectsHoles(t *testing.T) {
	outer := []GeoCoord{
		{Lat: -0.2, Lon: -0.2},
		{Lat: -0.2, Lon: 0.2},
		{Lat: 0.2, Lon: 0.2},
		{Lat: 0.2, Lon: -0.2},
	}
	hole := []GeoCoord{
		{Lat: -0.05, Lon: -0.05},
		{Lat: -0.05, Lon: 0.05},
		{Lat: 0.05, Lon: 0.05},
		{Lat: 0.05, Lon: -0.05},
	}
	p := Polygon{Outer: outer, Holes: [][]GeoCoord{hole}}

	if !p.Contains(GeoCoord{Lat: 0.15, Lon: 0.15}) {
		t.Fatalf("point inside outer ring, outside hole, should be contained")
	}
	if p.Contains(GeoCoord{Lat: 0, Lon: 0}) {
		t.Fatalf("point inside the hole should not be contained")
	}
}

func TestPolygonToCellsCoversSeedVertices(t *testing.T) {
	outer := []GeoCoord{
		{Lat: -0.05, Lon: -0.05},
		{Lat: -0.05, Lon: 0.05},
		{Lat: 0.05, Lon: 0.05},
		{Lat: 0.05, Lon: -0.05},
	}
	cells, err := PolygonToCells(Polygon{Outer: outer}, 5)
	if err != nil {
		t.Fatalf("PolygonToCells error: %v", err)
	}
	if len(cells) == 0 {
		t.Fatalf("PolygonToCells returned no cells for a non-degenerate polygon")
	}

	seed, err := GeoToCell(outer[0], 5)
	if err != nil {
		t.Fatalf("GeoToCell error: %v", err)
	}
	found := false
	for _, c := range cells {
		if c == seed {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("PolygonToCells did not include the outer ring's own seed cell")
	}
}

func TestCellsToLinkedMultiPolygonProducesClosedLoop(t *testing.T) {
	h, err := GeoToCell(GeoCoord{Lat: 0.1, Lon: 0.1}, 4)
	if err != nil {
		t.Fatalf("GeoToCell error: %v", err)
	}
	poly, err := CellsToLinkedMultiPolygon([]Index{h})
	if err != nil {
		t.Fatalf("CellsToLinkedMultiPolygon error: %v", err)
	}
	if len(poly.Loops) == 0 {
		t.Fatalf("expected at least one loop for a single cell")
	}
	for _, loop := range poly.Loops {
		if len(loop.Verts) < 3 {
			t.Fatalf("loop has %d vertices, want >= 3", len(loop.Verts))
		}
	}
}
