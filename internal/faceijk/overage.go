package faceijk

import "github.com/gravitas-015/h3grid/internal/ijk"

// Overage reports whether, and how, an IJK coordinate has moved off its
// icosahedron face.
type Overage int

const (
	NoOverage Overage = iota
	FaceEdge
	NewFace
)

// quadrant picks which of a face's three neighbors an overage coordinate
// has crossed into, per spec.md §4.2: (k>0,j>0)->IJ, (k>0,j=0)->KI,
// k=0->JK.
func quadrant(c ijk.CoordIJK) Quadrant {
	if c.K > 0 {
		if c.J > 0 {
			return QuadIJ
		}
		return QuadKI
	}
	return QuadJK
}

// AdjustOverageClassII detects whether fijk's coordinate has overaged off
// its face at res and, if so, walks it onto the correct neighbor face,
// repeating until the coordinate is back within bounds. pentLeading4
// signals the origin base cell is a pentagon whose leading digit is 4 (the
// direction flanking the deleted K sub-sequence); substrate triples the
// bound per spec.md §4.2.
func AdjustOverageClassII(fijk *FaceIJK, res int, pentLeading4 bool, substrate bool) Overage {
	overage := NoOverage

	maxDim := MaxDimByCIIres(res, substrate)

	for {
		c := fijk.Coord
		sum := c.I + c.J + c.K
		if sum <= maxDim {
			if pentLeading4 {
				// still possibly exactly on the edge; pentLeading4 is
				// consumed on the first iteration only.
				pentLeading4 = false
				if sum == maxDim {
					return FaceEdge
				}
			}
			return overage
		}

		q := quadrant(c)
		nb := faceNeighbors[fijk.Face][q]

		if pentLeading4 && q == QuadKI {
			origin := ijk.CoordIJK{I: maxDim, J: 0, K: 0}
			diff := fijk.Coord.Sub(origin)
			diff = diff.Rotate60CW()
			fijk.Coord = origin.Add(diff)
			pentLeading4 = false
			c = fijk.Coord
		}

		newCoord := c
		for r := 0; r < nb.CcwRot60; r++ {
			newCoord = newCoord.Rotate60CCW()
		}

		translate := nb.Translate.Scale(maxDim)
		newCoord = newCoord.Add(translate).Normalize()

		fijk.Face = nb.Face
		fijk.Coord = newCoord

		overage = NewFace
		if newCoord.I+newCoord.J+newCoord.K <= maxDim {
			return overage
		}
		// still overaged; loop again against the new face.
	}
}
