package h3grid

import "testing"

func TestToParentClearsFineDigits(t *testing.T) {
	h := newCellIndex(10, 5, []int{1, 2, 3, 4, 5})
	p, err := h.ToParent(2)
	if err != nil {
		t.Fatalf("ToParent error: %v", err)
	}
	if p.Resolution() != 2 {
		t.Fatalf("parent resolution = %d, want 2", p.Resolution())
	}
	if p.Digit(1) != 1 || p.Digit(2) != 2 {
		t.Fatalf("parent retained digits = (%d,%d), want (1,2)", p.Digit(1), p.Digit(2))
	}
	for r := 3; r <= MaxResolution; r++ {
		if p.Digit(r) != InvalidDigit {
			t.Fatalf("parent digit %d = %d, want InvalidDigit", r, p.Digit(r))
		}
	}
}

func TestToParentRejectsFinerResolution(t *testing.T) {
	h := newCellIndex(10, 2, []int{1, 2})
	if _, err := h.ToParent(5); err == nil {
		t.Fatalf("ToParent(5) on a res-2 index should fail")
	}
}

func TestMaxChildrenSizeHexagon(t *testing.T) {
	h := newCellIndex(0, 2, []int{0, 0}) // base cell 0 is not a pentagon
	if got := MaxChildrenSize(h, 4); got != 49 {
		t.Fatalf("MaxChildrenSize(res+2) = %d, want 49", got)
	}
}

func TestToChildrenCountMatchesMaxChildrenSize(t *testing.T) {
	h := newCellIndex(0, 1, []int{2})
	children, err := h.ToChildren(3)
	if err != nil {
		t.Fatalf("ToChildren error: %v", err)
	}
	if len(children) != MaxChildrenSize(h, 3) {
		t.Fatalf("len(children) = %d, want %d", len(children), MaxChildrenSize(h, 3))
	}
}

func TestToChildrenParentRoundtrip(t *testing.T) {
	h := newCellIndex(3, 2, []int{1, 4})
	children, err := h.ToChildren(4)
	if err != nil {
		t.Fatalf("ToChildren error: %v", err)
	}
	for i, c := range children {
		if c == 0 {
			continue
		}
		p, err := c.ToParent(2)
		if err != nil {
			t.Fatalf("child %d ToParent error: %v", i, err)
		}
		if p != h {
			t.Fatalf("child %d's parent = %v, want %v", i, p, h)
		}
	}
}

func TestToChildrenPentagonSkipsKDirection(t *testing.T) {
	h := newCellIndex(4, 1, []int{0}) // base cell 4 is a pentagon
	children, err := h.ToChildren(2)
	if err != nil {
		t.Fatalf("ToChildren error: %v", err)
	}
	if len(children) != 7 {
		t.Fatalf("len(children) = %d, want 7", len(children))
	}
	if children[1] != 0 {
		t.Fatalf("children[1] (K direction) = %v, want null index", children[1])
	}
}

func TestToChildrenPentagonSkipsKDirectionAcrossMultipleLevels(t *testing.T) {
	h := newCellIndex(4, 1, []int{0}) // base cell 4 is a pentagon, still at its apex
	children, err := h.ToChildren(3)
	if err != nil {
		t.Fatalf("ToChildren error: %v", err)
	}
	if len(children) != MaxChildrenSize(h, 3) {
		t.Fatalf("len(children) = %d, want %d (padded with nulls)", len(children), MaxChildrenSize(h, 3))
	}

	valid := 0
	for _, c := range children {
		if c == 0 {
			continue
		}
		valid++
		if c.Mode() != modeCell {
			t.Fatalf("non-null child %v has mode %d, want modeCell", c, c.Mode())
		}
	}
	// One level-2 child stays on the apex (digit 0) and itself deletes its
	// K child (6 valid), the other five level-2 children have already left
	// the apex and expand to a full 7 each: 5*7+6 = 41.
	if valid != 41 {
		t.Fatalf("valid (non-null) child count = %d, want 41", valid)
	}
}

func TestCompactUncompactRoundtrip(t *testing.T) {
	parent := newCellIndex(0, 1, []int{2})
	children, err := parent.ToChildren(2)
	if err != nil {
		t.Fatalf("ToChildren error: %v", err)
	}

	compacted, err := Compact(children)
	if err != nil {
		t.Fatalf("Compact error: %v", err)
	}
	if len(compacted) != 1 || compacted[0] != parent {
		t.Fatalf("Compact(full child set) = %v, want [%v]", compacted, parent)
	}

	uncompacted, err := Uncompact(compacted, 2)
	if err != nil {
		t.Fatalf("Uncompact error: %v", err)
	}
	recompacted, err := Compact(uncompacted)
	if err != nil {
		t.Fatalf("Compact(uncompacted) error: %v", err)
	}
	if len(recompacted) != 1 || recompacted[0] != parent {
		t.Fatalf("Compact(Uncompact(Compact(S))) = %v, want [%v]", recompacted, parent)
	}
}
