package h3grid

// VertexIndex embeds an owner cell and a vertex number (0..5, or 0..4 for
// a pentagon owner) in the reserved bit-field.
type VertexIndex Index

// vertexOwnerRule picks, among a vertex's incident cells, the canonical
// owner: the one with the lowest base cell, breaking ties by the lower
// digit stream (spec.md §4.7).
func vertexOwnerRule(candidates []Index) Index {
	owner := candidates[0]
	for _, c := range candidates[1:] {
		if c.BaseCell() < owner.BaseCell() {
			owner = c
			continue
		}
		if c.BaseCell() == owner.BaseCell() && c < owner {
			owner = c
		}
	}
	return owner
}

// CellToVertex builds the canonical vertex index for vertexNum on owner.
// vertexNum must be a legal vertex of owner (0..5, or 0..4 if owner is a
// pentagon).
func CellToVertex(owner Index, vertexNum int) (VertexIndex, error) {
	if owner.Mode() != modeCell {
		return 0, ErrMalformedIndex
	}
	maxVert := NumHexVerts - 1
	if owner.IsPentagon() {
		maxVert = NumPentVerts - 1
	}
	if vertexNum < 0 || vertexNum > maxVert {
		return 0, ErrInvalidLatLng
	}
	v := Index(owner).withMode(modeVertex).withExtra(vertexNum)
	return VertexIndex(v), nil
}

// Owner returns the vertex's owner cell.
func (v VertexIndex) Owner() Index {
	return Index(v).withMode(modeCell).withExtra(0)
}

// VertexNum returns the vertex's number within its owner's boundary.
func (v VertexIndex) VertexNum() int {
	return Index(v).Extra()
}

// Point decodes the vertex to its geographic coordinate.
func (v VertexIndex) Point() (GeoCoord, error) {
	owner := v.Owner()
	b, err := owner.GeoBoundaryFor()
	if err != nil {
		return GeoCoord{}, err
	}
	n := v.VertexNum()
	if n < 0 || n >= len(b.Verts) {
		return GeoCoord{}, ErrMalformedIndex
	}
	return b.Verts[n], nil
}

// IsValid reports whether v satisfies the vertex-index invariants: mode
// 4, and a vertex number legal for the owner's shape.
func (v VertexIndex) IsValid() bool {
	if Index(v).Mode() != modeVertex {
		return false
	}
	owner := v.Owner()
	if !owner.IsValidCell() {
		return false
	}
	maxVert := NumHexVerts - 1
	if owner.IsPentagon() {
		maxVert = NumPentVerts - 1
	}
	n := v.VertexNum()
	return n >= 0 && n <= maxVert
}
