package h3grid

import "testing"

func TestBitFieldRoundtrip(t *testing.T) {
	h := newCellIndex(42, 5, []int{1, 2, 3, 4, 5})
	if h.Resolution() != 5 {
		t.Fatalf("Resolution() = %d, want 5", h.Resolution())
	}
	if h.BaseCell() != 42 {
		t.Fatalf("BaseCell() = %d, want 42", h.BaseCell())
	}
	for r, want := range []int{1, 2, 3, 4, 5} {
		if got := h.Digit(r + 1); got != want {
			t.Fatalf("Digit(%d) = %d, want %d", r+1, got, want)
		}
	}
	for r := 6; r <= MaxResolution; r++ {
		if got := h.Digit(r); got != InvalidDigit {
			t.Fatalf("Digit(%d) = %d, want InvalidDigit (unused trailing digit)", r, got)
		}
	}
}

func TestStringRoundtrip(t *testing.T) {
	h := newCellIndex(10, 3, []int{0, 1, 2})
	s := h.String()
	if len(s) != 16 {
		t.Fatalf("String() length = %d, want 16", len(s))
	}
	parsed, err := ParseIndex(s)
	if err != nil {
		t.Fatalf("ParseIndex(%q) error: %v", s, err)
	}
	if parsed != h {
		t.Fatalf("ParseIndex(String()) = %v, want %v", parsed, h)
	}
}

func TestParseIndexKnownValues(t *testing.T) {
	h, err := ParseIndex("ffffffffffffffff")
	if err != nil {
		t.Fatalf("ParseIndex error: %v", err)
	}
	if uint64(h) != 0xffffffffffffffff {
		t.Fatalf("ParseIndex(ffff...) = %#x, want max uint64", uint64(h))
	}

	if _, err := ParseIndex("not-hex"); err == nil {
		t.Fatalf("ParseIndex(\"not-hex\") should error")
	}
}

func TestIsValidCellRejectsBadMode(t *testing.T) {
	h := newCellIndex(0, 0, nil).withMode(modeEdge)
	if h.IsValidCell() {
		t.Fatalf("IsValidCell() = true for a non-cell mode index")
	}
}

func TestIsValidCellRejectsPentagonLeadingK(t *testing.T) {
	// base cell 4 is a pentagon; a leading K (digit 1) at resolution 1 is
	// the deleted sub-sequence and must be invalid.
	h := newCellIndex(4, 1, []int{1})
	if h.IsValidCell() {
		t.Fatalf("IsValidCell() = true for pentagon with leading K digit")
	}
}

func TestLeadingNonZeroDigit(t *testing.T) {
	h := newCellIndex(0, 4, []int{0, 0, 3, 5})
	if got := h.LeadingNonZeroDigit(); got != 3 {
		t.Fatalf("LeadingNonZeroDigit() = %d, want 3", got)
	}

	allZero := newCellIndex(0, 3, []int{0, 0, 0})
	if got := allZero.LeadingNonZeroDigit(); got != InvalidDigit {
		t.Fatalf("LeadingNonZeroDigit() = %d, want InvalidDigit for an all-zero path", got)
	}
}
