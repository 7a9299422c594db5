package h3grid

import "testing"

func TestNeighborRejectsBadDirection(t *testing.T) {
	h := newCellIndex(0, 2, []int{1, 1})
	if _, err := h.Neighbor(0); err == nil {
		t.Fatalf("Neighbor(0) should fail")
	}
	if _, err := h.Neighbor(7); err == nil {
		t.Fatalf("Neighbor(7) should fail")
	}
}

func TestMaxKringSizeFormula(t *testing.T) {
	cases := map[int]int{0: 1, 1: 7, 2: 19, 3: 37}
	for k, want := range cases {
		if got := MaxKringSize(k); got != want {
			t.Fatalf("MaxKringSize(%d) = %d, want %d", k, got, want)
		}
	}
}

func TestKRingZeroIsOriginOnly(t *testing.T) {
	h := newCellIndex(0, 2, []int{1, 1})
	ring, err := KRing(h, 0)
	if err != nil {
		t.Fatalf("KRing error: %v", err)
	}
	if len(ring) != 1 || ring[0] != h {
		t.Fatalf("KRing(h, 0) = %v, want [%v]", ring, h)
	}
}

func TestKRingContainsOrigin(t *testing.T) {
	h := newCellIndex(0, 2, []int{1, 1})
	ring, err := KRing(h, 2)
	if err != nil {
		t.Fatalf("KRing error: %v", err)
	}
	found := false
	for _, c := range ring {
		if c == h {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("KRing(h, 2) did not contain origin %v", h)
	}
}

func TestKRingDistancesMonotoneAroundOrigin(t *testing.T) {
	h := newCellIndex(0, 2, []int{1, 1})
	dists, err := KRingDistances(h, 2)
	if err != nil {
		t.Fatalf("KRingDistances error: %v", err)
	}
	if dists[h] != 0 {
		t.Fatalf("origin distance = %d, want 0", dists[h])
	}
	for cell, d := range dists {
		if d < 0 || d > 2 {
			t.Fatalf("cell %v has out-of-range distance %d", cell, d)
		}
	}
}

func TestNeighborRoundtripIsSymmetric(t *testing.T) {
	h := newCellIndex(0, 3, []int{1, 2, 3})
	// K(1), J(2), JK(3), I(4), IK(5), IJ(6): summing a direction's unit
	// vector with its opposite's normalizes to the center, giving the
	// antipodal pairing (1,6), (2,5), (3,4).
	opp := [7]int{0, 6, 5, 4, 3, 2, 1}
	for dir := 1; dir <= 6; dir++ {
		nb, err := h.Neighbor(dir)
		if err != nil {
			continue // may legitimately fail crossing a pentagon deleted subsequence
		}
		back, err := nb.Neighbor(opp[dir])
		if err != nil {
			t.Fatalf("return Neighbor(%d) from %v failed: %v", opp[dir], nb, err)
		}
		if back != h {
			t.Fatalf("Neighbor(%d) then Neighbor(%d) = %v, want %v", dir, opp[dir], back, h)
		}
	}
}
