package ring

import "testing"

func TestFrontierPopOrdersByDepth(t *testing.T) {
	f := NewFrontier()
	f.Push(30, 3)
	f.Push(10, 1)
	f.Push(20, 2)

	var depths []int
	for f.Len() > 0 {
		item, ok := f.Pop()
		if !ok {
			t.Fatalf("Pop() ok=false while Len() > 0")
		}
		depths = append(depths, item.Depth)
	}
	want := []int{1, 2, 3}
	for i, d := range want {
		if depths[i] != d {
			t.Fatalf("depths = %v, want %v", depths, want)
		}
	}
}

func TestFrontierPeekDoesNotRemove(t *testing.T) {
	f := NewFrontier()
	f.Push(1, 5)
	item, ok := f.Peek()
	if !ok || item.Depth != 5 {
		t.Fatalf("Peek() = %+v, %v, want depth 5, true", item, ok)
	}
	if f.Len() != 1 {
		t.Fatalf("Len() after Peek() = %d, want 1", f.Len())
	}
}

func TestFrontierPopEmptyReturnsFalse(t *testing.T) {
	f := NewFrontier()
	if _, ok := f.Pop(); ok {
		t.Fatalf("Pop() on empty frontier should return ok=false")
	}
}
