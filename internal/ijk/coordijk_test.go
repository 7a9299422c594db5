package ijk

import "testing"

func TestNormalize(t *testing.T) {
	got := CoordIJK{I: 3, J: 5, K: 1}.Normalize()
	want := CoordIJK{I: 2, J: 4, K: 0}
	if got != want {
		t.Fatalf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestRotate60Roundtrip(t *testing.T) {
	c := CoordIJK{I: 1, J: 0, K: 0}
	got := c.Rotate60CCW().Rotate60CW()
	if got != c {
		t.Fatalf("Rotate60CCW().Rotate60CW() = %+v, want %+v", got, c)
	}
}

func TestRotate60CCWSixTimesIsIdentity(t *testing.T) {
	c := CoordIJK{I: 2, J: 1, K: 0}
	got := c
	for i := 0; i < 6; i++ {
		got = got.Rotate60CCW()
	}
	if got != c {
		t.Fatalf("six CCW rotations = %+v, want %+v", got, c)
	}
}

func TestDistanceSelfIsZero(t *testing.T) {
	c := CoordIJK{I: 4, J: 2, K: 0}
	if d := Distance(c, c); d != 0 {
		t.Fatalf("Distance(c, c) = %d, want 0", d)
	}
}

func TestDistanceNeighbor(t *testing.T) {
	origin := CoordIJK{}
	for digit := 1; digit <= 6; digit++ {
		nb := origin.Neighbor(digit)
		if d := Distance(origin, nb); d != 1 {
			t.Fatalf("Distance(origin, neighbor(%d)) = %d, want 1", digit, d)
		}
	}
}

func TestUpDownAp7Roundtrip(t *testing.T) {
	c := CoordIJK{I: 3, J: 1, K: 0}
	down := c.DownAp7()
	up := down.UpAp7()
	if up != c {
		t.Fatalf("UpAp7(DownAp7(%+v)) = %+v, want %+v", c, up, c)
	}
}

func TestUpDownAp7rRoundtrip(t *testing.T) {
	c := CoordIJK{I: 2, J: 0, K: 1}
	down := c.DownAp7r()
	up := down.UpAp7r()
	if up != c {
		t.Fatalf("UpAp7r(DownAp7r(%+v)) = %+v, want %+v", c, up, c)
	}
}

func TestUnitIjkToDigitMatchesUnitVecs(t *testing.T) {
	for d, v := range UnitVecs {
		if got := UnitIjkToDigit(v); got != d {
			t.Fatalf("UnitIjkToDigit(UnitVecs[%d]) = %d, want %d", d, got, d)
		}
	}
}

func TestCubeRoundtrip(t *testing.T) {
	c := CoordIJK{I: 3, J: 2, K: 0}
	x, y, z := c.ToCube()
	got := FromCube(x, y, z)
	if got != c {
		t.Fatalf("FromCube(ToCube(%+v)) = %+v, want %+v", c, got, c)
	}
	if x+y+z != 0 {
		t.Fatalf("cube coordinates do not sum to zero: %d+%d+%d", x, y, z)
	}
}
