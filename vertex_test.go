package h3grid

import "testing"

func TestCellToVertexRejectsOutOfRange(t *testing.T) {
	h := newCellIndex(0, 3, []int{1, 2, 3})
	if _, err := CellToVertex(h, -1); err == nil {
		t.Fatalf("CellToVertex(-1) should fail")
	}
	if _, err := CellToVertex(h, NumHexVerts); err == nil {
		t.Fatalf("CellToVertex(NumHexVerts) should fail for a hexagon owner")
	}
}

func TestCellToVertexPentagonMaxIsFour(t *testing.T) {
	h := newCellIndex(4, 2, []int{0, 0}) // base cell 4 is a pentagon
	if _, err := CellToVertex(h, NumPentVerts-1); err != nil {
		t.Fatalf("CellToVertex(NumPentVerts-1) on a pentagon should succeed: %v", err)
	}
	if _, err := CellToVertex(h, NumPentVerts); err == nil {
		t.Fatalf("CellToVertex(NumPentVerts) on a pentagon should fail")
	}
}

func TestVertexOwnerAndNumRoundtrip(t *testing.T) {
	h := newCellIndex(0, 3, []int{1, 2, 3})
	v, err := CellToVertex(h, 2)
	if err != nil {
		t.Fatalf("CellToVertex error: %v", err)
	}
	if v.Owner() != h {
		t.Fatalf("Owner() = %v, want %v", v.Owner(), h)
	}
	if v.VertexNum() != 2 {
		t.Fatalf("VertexNum() = %d, want 2", v.VertexNum())
	}
	if !v.IsValid() {
		t.Fatalf("vertex %v should be valid", v)
	}
}

func TestVertexOwnerRulePrefersLowerBaseCell(t *testing.T) {
	a := newCellIndex(5, 2, []int{1, 1})
	b := newCellIndex(2, 2, []int{1, 1})
	c := newCellIndex(2, 2, []int{1, 2})
	got := vertexOwnerRule([]Index{a, b, c})
	want := b
	if c < b {
		want = c
	}
	if got != want {
		t.Fatalf("vertexOwnerRule(...) = %v, want %v", got, want)
	}
}
