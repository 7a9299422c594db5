package h3grid

import "math"

// Boundary-surface constants from spec.md §6. These must match bit-for-bit to
// reproduce indexes at the antipodes of numerical stability (spec.md §9).
const (
	MaxResolution  = 15  // MAX_H3_RES
	NumBaseCells   = 122 // NUM_BASE_CELLS
	NumPentagons   = 12  // NUM_PENTAGONS
	NumIcosaFaces  = 20  // NUM_ICOSA_FACES
	NumHexVerts    = 6   // NUM_HEX_VERTS
	NumPentVerts   = 5   // NUM_PENT_VERTS
	InvalidFace    = -1  // INVALID_FACE
	InvalidDigit   = 7   // INVALID_DIGIT
	InvalidRot     = -1  // INVALID_ROTATIONS
	MaxFaceCoord   = 2   // largest legal i/j/k at resolution 0 on a face
	EarthRadiusKm  = 6371.007180918475
	EpsilonRad     = 0.0000000000001
	ResZeroGnomon  = 0.38196601125010500003 // RES0_U_GNOMONIC
	SqrtSeven      = 2.6457513110645905905016157536392604257102 // M_SQRT7
)

// ClassIIIRotRads is asin(sqrt(3/28)), the rotation applied at Class III
// (odd) resolutions: M_AP7_ROT_RADS.
var ClassIIIRotRads = math.Asin(math.Sqrt(3.0 / 28.0))

// IsResClassIII reports whether a resolution is Class III (odd).
func IsResClassIII(res int) bool { return res%2 == 1 }
