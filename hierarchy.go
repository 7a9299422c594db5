package h3grid

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ToParent returns h's ancestor at parentRes, or an error if parentRes is
// out of range or finer than h's own resolution.
func (h Index) ToParent(parentRes int) (Index, error) {
	res := h.Resolution()
	if parentRes < 0 || parentRes > res {
		return 0, ErrInvalidResolution
	}
	p := h.withResolution(parentRes)
	for r := parentRes + 1; r <= MaxResolution; r++ {
		p = p.withDigit(r, InvalidDigit)
	}
	return p, nil
}

// MaxChildrenSize returns the exact number of slots ToChildren needs for
// h at childRes: 7^(childRes-res), independent of whether h is a
// pentagon (empty pentagon slots are still emitted, as the null index).
func MaxChildrenSize(h Index, childRes int) int {
	res := h.Resolution()
	if childRes < res {
		return 0
	}
	n := 1
	for i := 0; i < childRes-res; i++ {
		n *= 7
	}
	return n
}

// ToChildren enumerates h's descendants at childRes in row-major digit
// order. A descendant is still sitting on a pentagon's apex (and so must
// itself delete its K-axis child) exactly when it is a pentagon and none
// of its digits down to its own resolution have left center yet; once a
// digit moves off center the subtree is an ordinary hexagon and no further
// deletion applies. Null slots (the deleted K subtree, or padding below
// one) stay null at every deeper level rather than being re-expanded, so
// the returned slice always has MaxChildrenSize(h, childRes) entries.
func (h Index) ToChildren(childRes int) ([]Index, error) {
	res := h.Resolution()
	if childRes < res || childRes > MaxResolution {
		return nil, ErrInvalidResolution
	}
	if childRes == res {
		return []Index{h}, nil
	}

	out := []Index{h}
	for r := res + 1; r <= childRes; r++ {
		var next []Index
		for _, parent := range out {
			if parent == 0 {
				for d := 0; d <= 6; d++ {
					next = append(next, 0)
				}
				continue
			}
			pentagonHere := parent.IsPentagon() && parent.LeadingNonZeroDigit() == InvalidDigit
			for d := 0; d <= 6; d++ {
				if pentagonHere && d == 1 {
					next = append(next, 0)
					continue
				}
				child := parent.withResolution(r).withDigit(r, d)
				next = append(next, child)
			}
		}
		out = next
	}
	return out, nil
}

// parentKey hashes h's parent at res for compact's bucketing, using
// xxhash the way a production compaction step would rather than a
// custom-rolled hash, per spec.md §4.4's "open-addressing hash".
func parentKey(h Index, res int) uint64 {
	p, _ := h.ToParent(res)
	return xxhash.Sum64String(strconv.FormatUint(uint64(p), 16))
}

// Compact reduces set to an equivalent set of coarser cells: whenever all
// children of a cell are present (7 for a hexagon parent, 6 for a pentagon
// parent), they are replaced by their parent, and the pass repeats on the
// result. A pass runs only while every remaining cell has the same
// resolution: when the input, or the result of a pass, mixes resolutions,
// Compact returns that set as it stands, so complete sibling groups at one
// resolution are not merged while other cells sit at another.
func Compact(set []Index) ([]Index, error) {
	remaining := append([]Index(nil), set...)

	for len(remaining) > 0 {
		res := remaining[0].Resolution()
		allSameRes := true
		for _, h := range remaining {
			if h.Resolution() != res {
				allSameRes = false
				break
			}
		}
		if !allSameRes || res == 0 {
			break
		}

		buckets := make(map[uint64][]Index, len(remaining))
		for _, h := range remaining {
			k := parentKey(h, res-1)
			buckets[k] = append(buckets[k], h)
		}

		var next []Index
		progressed := false
		seenParents := make(map[Index]bool, len(buckets))

		for _, children := range buckets {
			if len(children) == 0 {
				continue
			}
			parent, err := children[0].ToParent(res - 1)
			if err != nil {
				return nil, err
			}
			want := 7
			if parent.IsPentagon() {
				want = 6
			}
			if len(children) > want {
				return nil, ErrDuplicateInput
			}
			if seenParents[parent] {
				return nil, ErrLoopExceeded
			}
			seenParents[parent] = true

			if len(children) == want {
				next = append(next, parent)
				progressed = true
			} else {
				next = append(next, children...)
			}
		}

		if !progressed {
			return next, nil
		}
		remaining = next
	}
	return remaining, nil
}

// Uncompact expands every index in set to resolution res via ToChildren.
// Inputs coarser than res are expanded; inputs finer than res are errors.
func Uncompact(set []Index, res int) ([]Index, error) {
	var out []Index
	for _, h := range set {
		if h.Resolution() > res {
			return nil, ErrInvalidResolution
		}
		children, err := h.ToChildren(res)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if c != 0 {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

// MaxUncompactSize returns an upper bound on Uncompact's output size for
// set at res.
func MaxUncompactSize(set []Index, res int) int {
	total := 0
	for _, h := range set {
		total += MaxChildrenSize(h, res)
	}
	return total
}
