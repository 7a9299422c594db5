package faceijk

import (
	"math"

	"github.com/gravitas-015/h3grid/internal/ijk"
)

// Geo is a (lat, lon) pair in radians; duplicated here (rather than
// importing the root package, which would create an import cycle) as the
// minimal input geoToHex2d needs.
type Geo struct {
	Lat, Lon float64
}

// FaceIJK is a cell's offset on one of the 20 icosahedron faces.
type FaceIJK struct {
	Face  int
	Coord ijk.CoordIJK
}

const (
	resZeroGnomonic = 0.38196601125010500003
	sqrt7           = 2.6457513110645905905016157536392604257102
	classIIIRotRads = 0.333473172251832115336090755351601070065900389
	epsilonRad      = 0.0000000000001
)

func pointOnSphere(g Geo) (x, y, z float64) {
	cosLat := math.Cos(g.Lat)
	return cosLat * math.Cos(g.Lon), cosLat * math.Sin(g.Lon), math.Sin(g.Lat)
}

func faceCenterPoint(face int) (x, y, z float64) {
	fc := faceCenterGeo[face]
	return pointOnSphere(Geo{Lat: fc[0], Lon: fc[1]})
}

func sqDist(ax, ay, az, bx, by, bz float64) float64 {
	dx, dy, dz := ax-bx, ay-by, az-bz
	return dx*dx + dy*dy + dz*dz
}

// azimuthRads returns the initial bearing from a to b (radians, clockwise
// from north).
func azimuthRads(a, b Geo) float64 {
	y := math.Sin(b.Lon-a.Lon) * math.Cos(b.Lat)
	x := math.Cos(a.Lat)*math.Sin(b.Lat) - math.Sin(a.Lat)*math.Cos(b.Lat)*math.Cos(b.Lon-a.Lon)
	return math.Atan2(y, x)
}

// Hex2d is a planar hex-grid coordinate local to one icosahedron face.
type Hex2d struct {
	X, Y float64
}

// GeoToHex2d finds the icosahedron face nearest g (by minimal squared
// Euclidean distance between unit vectors, equivalent to nearest by
// spherical distance) and returns its planar hex2d coordinate at res,
// per spec.md §4.2.
func GeoToHex2d(g Geo, res int) (face int, v Hex2d) {
	px, py, pz := pointOnSphere(g)

	face = 0
	best := math.MaxFloat64
	for f := 0; f < 20; f++ {
		fx, fy, fz := faceCenterPoint(f)
		d := sqDist(px, py, pz, fx, fy, fz)
		if d < best {
			best = d
			face = f
		}
	}

	r := math.Acos(1 - best/2)
	if r < epsilonRad {
		return face, Hex2d{0, 0}
	}

	fc := faceCenterGeo[face]
	theta := faceAxesAzRadsCII[face] - azimuthRads(Geo{Lat: fc[0], Lon: fc[1]}, g)

	if isResClassIII(res) {
		theta -= classIIIRotRads
	}

	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}

	rp := math.Tan(r)
	rp /= resZeroGnomonic
	for i := 0; i < res; i++ {
		rp *= sqrt7
	}

	return face, Hex2d{X: rp * math.Cos(theta), Y: rp * math.Sin(theta)}
}

func isResClassIII(res int) bool { return res%2 == 1 }

const sin60 = 0.8660254037844386467637231707529361834714

// Hex2dToCoordIJK converts a planar hex2d coordinate to a normalized
// CoordIJK by quantizing into the ij system and rounding to the nearest
// lattice point, then folding across whichever axes v fell on the
// negative side of (spec.md §4.2).
func Hex2dToCoordIJK(v Hex2d) ijk.CoordIJK {
	a1 := math.Abs(v.X)
	a2 := math.Abs(v.Y)

	x2 := a2 / sin60
	x1 := a1 + x2/2.0

	m1 := int(x1)
	m2 := int(x2)

	r1 := x1 - float64(m1)
	r2 := x2 - float64(m2)

	var i, j int
	if r1 < 0.5 {
		if r1 < 1.0/3.0 {
			if r2 < (1.0+r1)/2.0 {
				i, j = m1, m2
			} else {
				i, j = m1, m2+1
			}
		} else {
			if r2 < (1.0 - r1) {
				j = m2
			} else {
				j = m2 + 1
			}
			if (1.0-r1) <= r2 && r2 < (2.0*r1) {
				i = m1 + 1
			} else {
				i = m1
			}
		}
	} else {
		if r1 < 2.0/3.0 {
			if r2 < (1.0 - r1) {
				j = m2
			} else {
				j = m2 + 1
			}
			if (2.0*r1-1.0) < r2 && r2 < (1.0-r1) {
				i = m1
			} else {
				i = m1 + 1
			}
		} else {
			i = m1 + 1
			if r2 < (r1 / 2.0) {
				j = m2
			} else {
				j = m2 + 1
			}
		}
	}

	if v.X < 0.0 {
		if j%2 == 0 {
			axisI := j / 2
			diff := i - axisI
			i -= 2 * diff
		} else {
			axisI := (j + 1) / 2
			diff := i - axisI
			i -= 2*diff + 1
		}
	}

	if v.Y < 0.0 {
		i -= (2*j + 1) / 2
		j = -j
	}

	return ijk.CoordIJK{I: i, J: j, K: 0}.Normalize()
}

// FaceAxisAzimuth exposes faceAxesAzRadsCII[face] for callers outside the
// package (edge/vertex boundary rendering).
func FaceAxisAzimuth(face int) float64 { return faceAxesAzRadsCII[face] }

// FaceCenter exposes faceCenterGeo[face] as a Geo value.
func FaceCenter(face int) Geo {
	fc := faceCenterGeo[face]
	return Geo{Lat: fc[0], Lon: fc[1]}
}
