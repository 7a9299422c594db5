package h3grid

import (
	"github.com/gravitas-015/h3grid/internal/basecell"
	"github.com/gravitas-015/h3grid/internal/digit"
	"github.com/gravitas-015/h3grid/internal/faceijk"
	"github.com/gravitas-015/h3grid/internal/ijk"
)

// LocalIJK is a cell's IJK+ offset expressed relative to some origin
// cell's home face, rather than the cell's own home face. Two indexes
// sharing an origin can be compared/interpolated in this coordinate
// system even when they live on different faces globally.
type LocalIJK struct {
	Coord ijk.CoordIJK
}

// ToLocalIJK expresses h as a LocalIJK anchored at origin. Both indexes
// must share a resolution. Fails (ErrNotNeighbors) if their base cells
// are different and not themselves neighbors, and (ErrPentagonAmbiguous)
// if a pentagon's deleted-direction geometry makes the local coordinate
// undefined, per spec.md §4.6.
func ToLocalIJK(origin, h Index) (LocalIJK, error) {
	if origin.Resolution() != h.Resolution() {
		return LocalIJK{}, ErrDifferentResolution
	}

	originBase := origin.BaseCell()
	hBase := h.BaseCell()

	if originBase == hBase {
		f := h3ToFaceIjk(h)
		return localizeToFace(origin, f)
	}

	dir := basecell.DirectionForNeighbor(originBase, hBase)
	if dir == InvalidDigit {
		return LocalIJK{}, ErrNotNeighbors
	}

	rotations := basecell.NeighborRotations(originBase, dir)
	if basecell.IsPentagon(hBase) {
		r, err := pentagonPreservingRotation(hBase, dir, rotations, h.LeadingNonZeroDigit())
		if err != nil {
			return LocalIJK{}, err
		}
		rotations = r
	}

	rotatedH := rotateIndexDigits(h, rotations%6)
	f := h3ToFaceIjk(rotatedH)

	if origin.IsPentagon() {
		originLead := origin.LeadingNonZeroDigit()
		if originLead != InvalidDigit {
			if digit.FailedDirections[originLead][dir] {
				return LocalIJK{}, ErrPentagonAmbiguous
			}
			extraRot := digit.PentagonRotations[originLead][dir]
			if extraRot < 0 {
				return LocalIJK{}, ErrPentagonAmbiguous
			}
			for i := 0; i < extraRot; i++ {
				f.Coord = f.Coord.Rotate60CW()
			}
		}
	}

	if h.IsPentagon() {
		revDir := oppositeDirection(dir)
		hLead := h.LeadingNonZeroDigit()
		if hLead != InvalidDigit {
			if digit.FailedDirections[hLead][revDir] {
				return LocalIJK{}, ErrPentagonAmbiguous
			}
		}
	}

	offset := unitOffsetForDirection(dir, origin.Resolution())
	f.Coord = f.Coord.Add(offset).Normalize()

	return localizeToFace(origin, f)
}

// localizeToFace re-expresses fijk, already on origin's home face, as a
// LocalIJK (a no-op beyond unwrapping since the coordinate is already
// face-local once overage has been resolved during descent).
func localizeToFace(origin Index, f faceijk.FaceIJK) (LocalIJK, error) {
	homeFace, _, _, _ := basecell.HomeFaceIJK(origin.BaseCell())
	if f.Face != homeFace {
		return LocalIJK{}, ErrNotNeighbors
	}
	return LocalIJK{Coord: f.Coord}, nil
}

// pentagonPreservingRotation adjusts the base-cell neighbor rotation count
// when hBase is a pentagon, so the rotated digit stream still avoids the
// deleted K-axis sub-sequence. The correction depends on h's own leading
// digit: row 0 of the reverse-rotation tables is exact only while h is
// still sitting on the pentagon's apex (no digit has left center, so
// hLeadingDigit is InvalidDigit); once h has a real leading digit that
// row must be used instead, and a table entry of -1 means the unfolding
// is genuinely ambiguous at this digit/direction pair, which must fail
// rather than guess.
func pentagonPreservingRotation(hBase, dir, rotations, hLeadingDigit int) (int, error) {
	table := digit.PentagonRotationsReverseNonpolar
	if basecell.IsPolarPentagon(hBase) {
		table = digit.PentagonRotationsReversePolar
	}
	row := hLeadingDigit
	if row == InvalidDigit {
		row = 0
	}
	extra := table[row][dir]
	if extra < 0 {
		return 0, ErrPentagonAmbiguous
	}
	return (rotations + extra) % 6, nil
}

// rotateIndexDigits rotates every digit of h's path rotations times CCW,
// without touching mode/base cell/resolution.
func rotateIndexDigits(h Index, rotations int) Index {
	res := h.Resolution()
	out := h
	for r := 1; r <= res; r++ {
		d := h.Digit(r)
		for i := 0; i < rotations; i++ {
			d = ijk.RotateDigit60CCW(d)
		}
		out = out.withDigit(r, d)
	}
	return out
}

func oppositeDirection(dir int) int {
	// K<->IJ, J<->IK, JK<->I: each pair's unit vectors sum to (1,1,1),
	// which normalizes to the center, making them antipodal.
	var opposite = [7]int{0, 6, 5, 4, 3, 2, 1}
	return opposite[dir]
}

// unitOffsetForDirection returns the unit vector for dir expressed at
// resolution res: the unit vector descended through res levels of
// aperture-7 (alternating CCW/CW per Class II/III), per spec.md §4.6.
func unitOffsetForDirection(dir, res int) ijk.CoordIJK {
	v := ijk.UnitVecs[dir]
	for r := 1; r <= res; r++ {
		if IsResClassIII(r) {
			v = v.DownAp7()
		} else {
			v = v.DownAp7r()
		}
	}
	return v
}

// LocalIJKToIndex is the inverse of ToLocalIJK: reconstruct a cell index
// from a LocalIJK anchored at origin.
func LocalIJKToIndex(origin Index, l LocalIJK) (Index, error) {
	homeFace, _, _, _ := basecell.HomeFaceIJK(origin.BaseCell())
	f := faceijk.FaceIJK{Face: homeFace, Coord: l.Coord.Normalize()}
	idx, ok := faceIjkToIndex(f, origin.Resolution())
	if !ok {
		return 0, ErrUnrepresentable
	}
	return idx, nil
}

// Distance returns the grid distance between a and b: the number of
// hex steps along the shortest path. Both must share a resolution.
func Distance(a, b Index) (int, error) {
	la, err := ToLocalIJK(a, a)
	if err != nil {
		return 0, err
	}
	lb, err := ToLocalIJK(a, b)
	if err != nil {
		return 0, err
	}
	return ijk.Distance(la.Coord, lb.Coord), nil
}

// Line returns the sequence of cells on the grid-distance-shortest path
// from a to b, inclusive of both endpoints, via cube-coordinate linear
// interpolation and rounding at each step.
func Line(a, b Index) ([]Index, error) {
	la, err := ToLocalIJK(a, a)
	if err != nil {
		return nil, err
	}
	lb, err := ToLocalIJK(a, b)
	if err != nil {
		return nil, err
	}

	n := ijk.Distance(la.Coord, lb.Coord)
	if n == 0 {
		return []Index{a}, nil
	}

	ax, ay, az := la.Coord.ToCube()
	bx, by, bz := lb.Coord.ToCube()

	out := make([]Index, 0, n+1)
	for step := 0; step <= n; step++ {
		t := float64(step) / float64(n)
		x := cubeLerp(ax, bx, t)
		y := cubeLerp(ay, by, t)
		z := cubeLerp(az, bz, t)
		rx, ry, rz := cubeRound(x, y, z)

		c := ijk.FromCube(rx, ry, rz)
		h, err := LocalIJKToIndex(a, LocalIJK{Coord: c})
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func cubeLerp(a, b int, t float64) float64 {
	return float64(a) + (float64(b)-float64(a))*t
}

func cubeRound(x, y, z float64) (int, int, int) {
	rx := roundF(x)
	ry := roundF(y)
	rz := roundF(z)

	dx := absF(rx - x)
	dy := absF(ry - y)
	dz := absF(rz - z)

	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}
	return int(rx), int(ry), int(rz)
}

func roundF(v float64) float64 {
	if v < 0 {
		return -roundF(-v)
	}
	return float64(int64(v + 0.5))
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
