package h3grid

import (
	"github.com/gravitas-015/h3grid/internal/basecell"
	"github.com/gravitas-015/h3grid/internal/digit"
	"github.com/gravitas-015/h3grid/internal/ijk"
	"github.com/gravitas-015/h3grid/internal/ring"
)

// neighborRotations is the core traversal primitive (spec.md §4.5): step
// h one cell in direction dir, returning the resulting index and the
// number of CCW 60-degree rotations the caller must apply to any
// direction vector it is carrying alongside.
func neighborRotations(h Index, dir int) (Index, int, error) {
	if dir < 1 || dir > 6 {
		return 0, 0, ErrInvalidEdgeDirection
	}

	res := h.Resolution()
	digits := make([]int, res)
	for r := 1; r <= res; r++ {
		digits[r-1] = h.Digit(r)
	}

	curDir := dir
	for r := res; r >= 1; r-- {
		oldDigit := digits[r-1]
		var newDigitTable, adjustmentTable [7][7]int
		if IsResClassIII(r) {
			newDigitTable, adjustmentTable = digit.NewDigitIII, digit.NewAdjustmentIII
		} else {
			newDigitTable, adjustmentTable = digit.NewDigitII, digit.NewAdjustmentII
		}
		digits[r-1] = newDigitTable[oldDigit][curDir]
		curDir = adjustmentTable[oldDigit][curDir]
		if curDir == 0 {
			break
		}
	}

	baseCell := h.BaseCell()
	rotations := 0
	if curDir != 0 {
		nb := basecell.Neighbor(baseCell, curDir)
		if nb == basecell.InvalidBaseCell {
			return 0, 0, ErrNotNeighbors
		}
		rotations = basecell.NeighborRotations(baseCell, curDir) % 6
		baseCell = nb
	}

	for i := range digits {
		for k := 0; k < rotations; k++ {
			digits[i] = ijk.RotateDigit60CCW(digits[i])
		}
	}

	return newCellIndex(baseCell, res, digits), rotations, nil
}

// Neighbor returns the cell reached from h by stepping one unit in
// direction dir (1..6).
func (h Index) Neighbor(dir int) (Index, error) {
	n, _, err := neighborRotations(h, dir)
	return n, err
}

// MaxKringSize returns the exact size of the dense output kRing produces
// for radius k: the centered hexagonal number 1+6*(k*(k+1)/2).
func MaxKringSize(k int) int {
	return 1 + 6*(k*(k+1)/2)
}

// KRing returns all cells within grid distance k of origin (origin
// included), via breadth-first search. Matches spec.md §4.5's fallback
// path unconditionally — a fixed-direction ring walk is only a speed
// optimization this implementation does not need to take.
func KRing(origin Index, k int) ([]Index, error) {
	dists, err := KRingDistances(origin, k)
	if err != nil {
		return nil, err
	}
	out := make([]Index, 0, len(dists))
	for h := range dists {
		out = append(out, h)
	}
	return out, nil
}

// KRingDistances is KRing but also returns each cell's BFS depth from
// origin. The frontier is a depth-ordered min-heap rather than a
// per-level slice, so a pentagon's irregular fan-out (some cells gaining
// fewer than six neighbors) never desyncs the traversal order: cells are
// always expanded in non-decreasing depth, exactly the order a per-level
// slice would visit them in, without needing to know the fan-out shape of
// the ring in advance.
func KRingDistances(origin Index, k int) (map[Index]int, error) {
	if k < 0 {
		return nil, ErrInvalidResolution
	}

	visited := map[Index]int{origin: 0}
	frontier := ring.NewFrontier()
	frontier.Push(uint64(origin), 0)

	for frontier.Len() > 0 {
		item, _ := frontier.Pop()
		if item.Depth >= k {
			continue
		}
		cell := Index(item.Cell)
		for dir := 1; dir <= 6; dir++ {
			nb, err := cell.Neighbor(dir)
			if err != nil {
				continue
			}
			if _, seen := visited[nb]; seen {
				continue
			}
			visited[nb] = item.Depth + 1
			frontier.Push(uint64(nb), item.Depth+1)
		}
	}
	return visited, nil
}

// ringDirectionSequence is the fixed sequence of direction steps used to
// walk ring k without revisiting cells: k steps in each of the six
// directions in digit order, rotated one step at the start of each edge.
var ringDirectionSequence = [6]int{2, 6, 4, 5, 1, 3} // J, IJ, I, IK, K, JK

// HexRange attempts the fast ring-by-ring walk with a fixed direction
// sequence per ring; it aborts and reports failure the moment any step
// would cross a pentagon, since the fixed sequence assumes a regular
// hexagonal lattice (spec.md §4.5). The caller should retry with KRing on
// failure.
func HexRange(origin Index, k int) ([]Index, bool) {
	if k == 0 {
		return []Index{origin}, true
	}

	out := []Index{origin}
	current := origin
	for ring := 1; ring <= k; ring++ {
		start, err := current.Neighbor(ringDirectionSequence[0])
		if err != nil {
			return nil, false
		}
		if start.IsPentagon() {
			return nil, false
		}
		current = start
		out = append(out, current)

		for side := 0; side < 6; side++ {
			steps := ring
			if side == 0 {
				steps = ring - 1
			}
			for s := 0; s < steps; s++ {
				next, err := current.Neighbor(ringDirectionSequence[side])
				if err != nil || next.IsPentagon() {
					return nil, false
				}
				current = next
				out = append(out, current)
			}
		}
	}

	return out, true
}
