package h3grid

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// CellSet is a deduplicating, ordered set of cell indexes, backed by a
// compressed bitmap so that polygon fills over dense neighborhoods stay
// cheap even at fine resolutions.
type CellSet struct {
	bits *roaring64.Bitmap
}

// NewCellSet creates an empty CellSet, optionally seeded with cells.
func NewCellSet(cells ...Index) *CellSet {
	s := &CellSet{bits: roaring64.New()}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts h, a no-op if already present.
func (s *CellSet) Add(h Index) {
	s.bits.Add(uint64(h))
}

// Contains reports whether h is in the set.
func (s *CellSet) Contains(h Index) bool {
	return s.bits.Contains(uint64(h))
}

// Len returns the number of distinct cells in the set.
func (s *CellSet) Len() int {
	return int(s.bits.GetCardinality())
}

// Slice returns the set's cells in ascending numeric order.
func (s *CellSet) Slice() []Index {
	out := make([]Index, 0, s.Len())
	it := s.bits.Iterator()
	for it.HasNext() {
		out = append(out, Index(it.Next()))
	}
	return out
}
