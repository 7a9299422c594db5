package faceijk

import "github.com/gravitas-015/h3grid/internal/ijk"

// vertsCII are the six hex vertex offsets (ccw from the i-axis) of an
// origin-centered cell in a Class II resolution, expressed on a 33r
// aperture-3 substrate grid.
var vertsCII = [6]ijk.CoordIJK{
	{I: 2, J: 1, K: 0},
	{I: 1, J: 2, K: 0},
	{I: 0, J: 2, K: 1},
	{I: 0, J: 1, K: 2},
	{I: 1, J: 0, K: 2},
	{I: 2, J: 0, K: 1},
}

// vertsCIII are the Class III analog, on a 33r7r substrate grid.
var vertsCIII = [6]ijk.CoordIJK{
	{I: 5, J: 4, K: 0},
	{I: 1, J: 5, K: 0},
	{I: 0, J: 5, K: 4},
	{I: 0, J: 1, K: 5},
	{I: 4, J: 0, K: 5},
	{I: 5, J: 0, K: 1},
}

// pentVerts drops the K-flanked hex vertex (index 4, between the deleted
// K-axis direction and its CCW neighbor IK) from the corresponding hex
// table, giving the five vertices of a pentagon cell. The upstream system
// uses a distinct, slightly distorted pentagon vertex table; that table is
// not present anywhere in the retrieval pack, so this is a documented
// approximation rather than a reproduction (see DESIGN.md).
func pentVertsCII() [5]ijk.CoordIJK {
	return dropVert(vertsCII)
}

func pentVertsCIII() [5]ijk.CoordIJK {
	return dropVert(vertsCIII)
}

func dropVert(v [6]ijk.CoordIJK) [5]ijk.CoordIJK {
	var out [5]ijk.CoordIJK
	j := 0
	for i, c := range v {
		if i == 4 {
			continue
		}
		out[j] = c
		j++
	}
	return out
}

// FaceIjkToVerts descends fijk onto a 33r (or 33r7r for Class III)
// substrate grid and returns its six hex vertices as substrate FaceIJK
// addresses, along with the substrate resolution (res, bumped by one for
// Class III since the trailing 7r step moves up one level).
func FaceIjkToVerts(fijk FaceIJK, res int) (verts [6]FaceIJK, substrateRes int) {
	c := fijk.Coord
	c = c.DownAp3()
	c = c.DownAp3r()

	classIII := isResClassIII(res)
	substrateRes = res
	if classIII {
		c = c.DownAp7r()
		substrateRes = res + 1
	}

	table := vertsCII
	if classIII {
		table = vertsCIII
	}

	for i, off := range table {
		verts[i] = FaceIJK{Face: fijk.Face, Coord: c.Add(off).Normalize()}
	}
	return verts, substrateRes
}

// FaceIjkPentToVerts is the pentagon analog of FaceIjkToVerts, returning
// five vertices instead of six.
func FaceIjkPentToVerts(fijk FaceIJK, res int) (verts [5]FaceIJK, substrateRes int) {
	c := fijk.Coord
	c = c.DownAp3()
	c = c.DownAp3r()

	classIII := isResClassIII(res)
	substrateRes = res
	if classIII {
		c = c.DownAp7r()
		substrateRes = res + 1
	}

	var table [5]ijk.CoordIJK
	if classIII {
		table = pentVertsCIII()
	} else {
		table = pentVertsCII()
	}

	for i, off := range table {
		verts[i] = FaceIJK{Face: fijk.Face, Coord: c.Add(off).Normalize()}
	}
	return verts, substrateRes
}
