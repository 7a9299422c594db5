package faceijk

import (
	"math"
	"testing"
)

func TestGeoToHex2dFaceCenterIsOrigin(t *testing.T) {
	for face := 0; face < 20; face++ {
		fc := FaceCenter(face)
		gotFace, v := GeoToHex2d(Geo{Lat: fc.Lat, Lon: fc.Lon}, 0)
		if gotFace != face {
			t.Fatalf("face %d center resolved to face %d", face, gotFace)
		}
		if math.Hypot(v.X, v.Y) > 1e-6 {
			t.Fatalf("face %d center hex2d = %+v, want near origin", face, v)
		}
	}
}

func TestHex2dToCoordIJKOrigin(t *testing.T) {
	c := Hex2dToCoordIJK(Hex2d{X: 0, Y: 0})
	if c.I != 0 || c.J != 0 || c.K != 0 {
		t.Fatalf("Hex2dToCoordIJK(0,0) = %+v, want zero", c)
	}
}

func TestMaxDimByCIIresGrowth(t *testing.T) {
	if MaxDimByCIIres(0, false) != 2 {
		t.Fatalf("MaxDimByCIIres(0) = %d, want 2", MaxDimByCIIres(0, false))
	}
	if MaxDimByCIIres(2, false) != MaxDimByCIIres(0, false)*7 {
		t.Fatalf("MaxDimByCIIres(2) should be 7x MaxDimByCIIres(0)")
	}
	if MaxDimByCIIres(5, true) != MaxDimByCIIres(5, false)*3 {
		t.Fatalf("substrate MaxDimByCIIres should triple the non-substrate value")
	}
}
