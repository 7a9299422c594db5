// Package faceijk implements the (face, ijk) layer: gnomonic geo<->hex2d
// projection, face-to-face overage adjustment, and cell vertex enumeration
// on the aperture-3 substrate grid.
//
// faceCenterGeo, faceAxesAzRadsCII, and faceNeighbors are not present
// verbatim anywhere in the retrieval pack (only declared/used, never
// defined); they are derived here from first-principles regular
// icosahedron geometry rather than guessed — see DESIGN.md for the
// derivation and its numerical verification.
package faceijk

import "github.com/gravitas-015/h3grid/internal/ijk"

// Quadrant identifies which of a face's three neighbors an overage
// coordinate has crossed into.
type Quadrant int

const (
	QuadIJ Quadrant = iota
	QuadKI
	QuadJK
)

// FaceNeighbor describes one of a face's three neighbors: which face it
// is, the translation vector to apply when crossing onto it, and the CCW
// rotation count to reorient the coordinate once there.
type FaceNeighbor struct {
	Face      int
	Translate ijk.CoordIJK
	CcwRot60  int
}

// faceCenterGeo[f] is the (lat, lon) in radians of icosahedron face f's
// center.
var faceCenterGeo = [20][2]float64{
	{1.2059324986814133, 0.0}, // face 0
	{1.2059324986814133, 3.141592653589793}, // face 1
	{0.3648638281134831, 1.5707963267948966}, // face 2
	{0.6154797086703875, 0.7853981633974483}, // face 3
	{0.6154797086703875, 2.356194490192345}, // face 4
	{0.3648638281134831, -1.5707963267948966}, // face 5
	{0.6154797086703875, -0.7853981633974483}, // face 6
	{0.6154797086703875, -2.356194490192345}, // face 7
	{-1.2059324986814133, 0.0}, // face 8
	{-1.2059324986814133, 3.141592653589793}, // face 9
	{-0.3648638281134831, 1.5707963267948966}, // face 10
	{-0.6154797086703875, 0.7853981633974483}, // face 11
	{-0.6154797086703875, 2.356194490192345}, // face 12
	{-0.3648638281134831, -1.5707963267948966}, // face 13
	{-0.6154797086703875, -0.7853981633974483}, // face 14
	{-0.6154797086703875, -2.356194490192345}, // face 15
	{0.0, 0.36486382811348317}, // face 16
	{0.0, 2.7767288254763103}, // face 17
	{0.0, -0.36486382811348317}, // face 18
	{0.0, -2.7767288254763103}, // face 19
}

// faceAxesAzRadsCII[f] is the azimuth (radians, clockwise from north) of
// face f's Class II i-axis at its center.
var faceAxesAzRadsCII = [20]float64{
	1.0471975511965974, // face 0
	5.235987755982989, // face 1
	0.0, // face 2
	0.6590580358264089, // face 3
	5.624127271353178, // face 4
	0.0, // face 5
	5.624127271353178, // face 6
	0.6590580358264089, // face 7
	2.0943951023931957, // face 8
	4.1887902047863905, // face 9
	3.141592653589793, // face 10
	2.4825346177633842, // face 11
	3.800650689416202, // face 12
	3.141592653589793, // face 13
	3.800650689416202, // face 14
	2.4825346177633842, // face 15
	1.5707963267948966, // face 16
	4.71238898038469, // face 17
	4.71238898038469, // face 18
	1.5707963267948966, // face 19
}

// faceNeighbors[f] holds f's three neighbors in (IJ, KI, JK) quadrant
// order, each with its crossing translation and rotation.
var faceNeighbors = [20][3]FaceNeighbor{
	{{Face: 1, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 3, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 6, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 1}}, // face 0
	{{Face: 4, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 0, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 7, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 5}}, // face 1
	{{Face: 3, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 4, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 10, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 3}}, // face 2
	{{Face: 0, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 2, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 16, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 5}}, // face 3
	{{Face: 2, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 1, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 17, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 1}}, // face 4
	{{Face: 7, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 6, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 13, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 3}}, // face 5
	{{Face: 5, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 0, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 5}, {Face: 18, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 1}}, // face 6
	{{Face: 1, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 1}, {Face: 5, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 19, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 5}}, // face 7
	{{Face: 11, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 9, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 14, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 5}}, // face 8
	{{Face: 8, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 12, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 15, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 1}}, // face 9
	{{Face: 12, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 11, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 2, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 3}}, // face 10
	{{Face: 10, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 8, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 16, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 1}}, // face 11
	{{Face: 9, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 10, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 17, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 5}}, // face 12
	{{Face: 14, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 15, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 5, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 3}}, // face 13
	{{Face: 8, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 1}, {Face: 13, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 1}, {Face: 18, Translate: ijk.CoordIJK{I: 0, J: 0, K: -1}, CcwRot60: 5}}, // face 14
	{{Face: 13, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 5}, {Face: 9, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 5}, {Face: 19, Translate: ijk.CoordIJK{I: 0, J: -1, K: 0}, CcwRot60: 1}}, // face 15
	{{Face: 3, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 1}, {Face: 11, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 5}, {Face: 18, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 3}}, // face 16
	{{Face: 12, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 1}, {Face: 4, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 5}, {Face: 19, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 3}}, // face 17
	{{Face: 14, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 1}, {Face: 6, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 5}, {Face: 16, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 3}}, // face 18
	{{Face: 7, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 1}, {Face: 15, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 5}, {Face: 17, Translate: ijk.CoordIJK{I: -1, J: 0, K: 0}, CcwRot60: 3}}, // face 19
}

// maxDimByCIIres[r] is the maximum i+j+k sum (Class II) before a
// coordinate has overaged off its face, at resolution r. Derived
// analytically from the aperture-7 scaling rule rather than a literal
// table (see DESIGN.md): one Class-II -> Class-III -> Class-II round trip
// (two aperture-7 climbs) scales the linear extent by exactly 7. Odd
// (Class III) slots hold the preceding Class-II value; overage adjustment
// only consults this table at Class-II boundaries.
var maxDimByCIIres = func() [16]int {
	var t [16]int
	t[0] = 2
	for r := 1; r <= 15; r++ {
		if r%2 == 0 {
			t[r] = t[r-2] * 7
		} else {
			t[r] = t[r-1]
		}
	}
	return t
}()

// MaxDimByCIIres returns maxDimByCIIres[res], tripled when substrate is
// true (spec.md §4.2: "tripled when in a substrate grid").
func MaxDimByCIIres(res int, substrate bool) int {
	d := maxDimByCIIres[res]
	if substrate {
		return d * 3
	}
	return d
}
