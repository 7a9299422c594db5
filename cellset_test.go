package h3grid

import "testing"

func TestCellSetAddContains(t *testing.T) {
	s := NewCellSet()
	h := newCellIndex(0, 3, []int{1, 2, 3})
	if s.Contains(h) {
		t.Fatalf("empty set should not contain h")
	}
	s.Add(h)
	if !s.Contains(h) {
		t.Fatalf("set should contain h after Add")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestCellSetAddIsIdempotent(t *testing.T) {
	h := newCellIndex(0, 3, []int{1, 2, 3})
	s := NewCellSet(h, h, h)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after adding the same cell three times", s.Len())
	}
}

func TestCellSetSliceContainsAllMembers(t *testing.T) {
	a := newCellIndex(0, 2, []int{1, 1})
	b := newCellIndex(0, 2, []int{2, 2})
	s := NewCellSet(a, b)
	slice := s.Slice()
	if len(slice) != 2 {
		t.Fatalf("Slice() length = %d, want 2", len(slice))
	}
	found := map[Index]bool{}
	for _, c := range slice {
		found[c] = true
	}
	if !found[a] || !found[b] {
		t.Fatalf("Slice() = %v, missing a member of {%v, %v}", slice, a, b)
	}
}
