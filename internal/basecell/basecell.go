package basecell

// InvalidBaseCell marks a missing neighbor (a pentagon's deleted K-axis
// direction has no neighbor).
const InvalidBaseCell = 127

// IsPentagon reports whether bc is one of the 12 pentagon base cells.
func IsPentagon(bc int) bool {
	return BaseCellDataTable[bc].IsPentagon
}

// IsPolarPentagon reports whether bc is one of the two polar pentagons
// (base cells 4 and 117), which need extra rotation-table variants.
func IsPolarPentagon(bc int) bool {
	return bc == 4 || bc == 117
}

// ToCCWRot60 returns the number of CCW 60-degree rotations that map bc's
// home orientation onto the faceIjk unit it occupies on face f.
func ToCCWRot60(bc, face int) int {
	d := BaseCellDataTable[bc]
	if d.HomeFace == face {
		return 0
	}
	// Search the base cell's faceIjk table entries on the requested face
	// for the matching rotation; falls back to 0 if bc never appears
	// there (bc is not visible from that face).
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				e := FaceIjkBaseCells[face][i][j][k]
				if e.BaseCell == bc {
					return e.CcwRot60
				}
			}
		}
	}
	return 0
}

// IsCwOffset reports whether base cell bc is clockwise-offset from face f,
// i.e. f is one of its two cwOffsetPent faces.
func IsCwOffset(bc, face int) bool {
	d := BaseCellDataTable[bc]
	return d.CwOffsetPent0 == face || d.CwOffsetPent1 == face
}

// Neighbor returns the base cell reached from bc stepping direction dir
// (1..6), or InvalidBaseCell if dir is the pentagon's deleted direction.
func Neighbor(bc, dir int) int {
	return BaseCellNeighbors[bc][dir]
}

// NeighborRotations returns the CCW rotation count applied when stepping
// from bc in direction dir.
func NeighborRotations(bc, dir int) int {
	return BaseCellNeighbor60CCWRots[bc][dir]
}

// DirectionForNeighbor returns the direction digit from bc to its
// neighbor nb, or InvalidDigit (7) if nb is not a neighbor of bc.
func DirectionForNeighbor(bc, nb int) int {
	for dir := 0; dir < 7; dir++ {
		if BaseCellNeighbors[bc][dir] == nb {
			return dir
		}
	}
	return 7
}

// HomeFaceIJK returns the resolution-0 (face, i, j, k) of base cell bc.
func HomeFaceIJK(bc int) (face, i, j, k int) {
	d := BaseCellDataTable[bc]
	return d.HomeFace, d.HomeI, d.HomeJ, d.HomeK
}

// PentagonDirectionFaces returns, for a pentagon base cell, its home face
// and the (up to two) clockwise-offset faces on which its descendants may
// also appear. Reconstructed from BaseCellDataTable rather than a separate
// literal table (see DESIGN.md).
func PentagonDirectionFaces(bc int) (faces []int) {
	d := BaseCellDataTable[bc]
	if !d.IsPentagon {
		return nil
	}
	faces = append(faces, d.HomeFace)
	if d.CwOffsetPent0 >= 0 {
		faces = append(faces, d.CwOffsetPent0)
	}
	if d.CwOffsetPent1 >= 0 {
		faces = append(faces, d.CwOffsetPent1)
	}
	return faces
}

// FaceBaseCell looks up the base cell and rotation at a resolution-0
// faceIjk position, where i, j, k are each in 0..2.
func FaceBaseCell(face, i, j, k int) (baseCell, ccwRot60 int) {
	e := FaceIjkBaseCells[face][i][j][k]
	return e.BaseCell, e.CcwRot60
}
