package h3grid

import (
	"math"

	"github.com/gravitas-015/h3grid/internal/basecell"
	"github.com/gravitas-015/h3grid/internal/faceijk"
	"github.com/gravitas-015/h3grid/internal/ijk"
)

func maxIJK(c ijk.CoordIJK) int {
	m := c.I
	if c.J > m {
		m = c.J
	}
	if c.K > m {
		m = c.K
	}
	return m
}

// faceIjkToIndex performs the bottom-up construction described in
// spec.md §4.3: climb res levels of aperture-7 to reach the base cell's
// home coordinate, recording a direction digit at each level, then fold
// in the base cell's canonical rotation.
func faceIjkToIndex(f faceijk.FaceIJK, res int) (Index, bool) {
	c := f.Coord
	digits := make([]int, res)

	for r := res; r >= 1; r-- {
		lastIJK := c
		var lastCenter ijk.CoordIJK
		if IsResClassIII(r) {
			c = c.UpAp7()
			lastCenter = c.DownAp7()
		} else {
			c = c.UpAp7r()
			lastCenter = c.DownAp7r()
		}
		diff := lastIJK.Sub(lastCenter).Normalize()
		digits[r-1] = ijk.UnitIjkToDigit(diff)
	}

	if maxIJK(c) > MaxFaceCoord {
		return 0, false
	}

	baseCell, ccwRot60 := basecell.FaceBaseCell(f.Face, c.I, c.J, c.K)

	if basecell.IsPentagon(baseCell) {
		leadDigit := InvalidDigit
		for _, d := range digits {
			if d != 0 {
				leadDigit = d
				break
			}
		}
		if leadDigit == 1 {
			// The path runs through the pentagon's deleted K-axis
			// sub-sequence; rotate once more to push it out, CW on a
			// cw-offset face and CCW otherwise.
			if basecell.IsCwOffset(baseCell, f.Face) {
				ccwRot60 = (ccwRot60 + 5) % 6
			} else {
				ccwRot60 = (ccwRot60 + 1) % 6
			}
		}
	}

	for i := range digits {
		for k := 0; k < ccwRot60; k++ {
			digits[i] = ijk.RotateDigit60CCW(digits[i])
		}
	}

	return newCellIndex(baseCell, res, digits), true
}

// h3ToFaceIjk performs the top-down reconstruction described in
// spec.md §4.3: start at the base cell's home face and descend res
// levels of aperture-7, adding the unit vector for each level's digit and
// correcting overage as the coordinate threatens to cross a face edge.
func h3ToFaceIjk(h Index) faceijk.FaceIJK {
	bc := h.BaseCell()
	face, i, j, k := basecell.HomeFaceIJK(bc)
	f := faceijk.FaceIJK{Face: face, Coord: ijk.CoordIJK{I: i, J: j, K: k}}

	isPent := basecell.IsPentagon(bc)
	res := h.Resolution()

	for r := 1; r <= res; r++ {
		if IsResClassIII(r) {
			f.Coord = f.Coord.DownAp7()
		} else {
			f.Coord = f.Coord.DownAp7r()
		}

		digit := h.Digit(r)
		f.Coord = f.Coord.Neighbor(digit)

		pentLeading4 := isPent && r == 1 && digit == 4
		if !IsResClassIII(r) {
			faceijk.AdjustOverageClassII(&f, r, pentLeading4, false)
		}
	}

	return f
}

// GeoToCell returns the cell containing g at resolution res.
func GeoToCell(g GeoCoord, res int) (Index, error) {
	if res < 0 || res > MaxResolution {
		return 0, ErrInvalidResolution
	}
	if !g.isFinite() {
		return 0, ErrInvalidLatLng
	}

	face, v := faceijk.GeoToHex2d(faceijk.Geo{Lat: g.Lat, Lon: g.Lon}, res)
	coord := faceijk.Hex2dToCoordIJK(v)

	idx, ok := faceIjkToIndex(faceijk.FaceIJK{Face: face, Coord: coord}, res)
	if !ok {
		return 0, ErrUnrepresentable
	}
	return idx, nil
}

// Geo returns h's center coordinate.
func (h Index) Geo() (GeoCoord, error) {
	if h.Mode() != modeCell {
		return GeoCoord{}, ErrMalformedIndex
	}
	f := h3ToFaceIjk(h)
	return faceIjkToGeo(f, h.Resolution(), false), nil
}

// faceIjkToGeo inverts geoToHex2d: projects a FaceIJK coordinate back to
// the unit sphere via its gnomonic radius and azimuth from the face
// center. substrate marks a vertex address on the aperture-3 substrate
// grid, whose unit length is a third of the res grid's.
func faceIjkToGeo(f faceijk.FaceIJK, res int, substrate bool) GeoCoord {
	i, j := f.Coord.ToIJ()
	x := float64(i) - float64(j)/2.0
	y := float64(j) * math.Sqrt(3.0) / 2.0

	v := faceijk.Hex2d{X: x, Y: y}
	r := math.Hypot(v.X, v.Y)

	if r < EpsilonRad {
		fc := faceijk.FaceCenter(f.Face)
		return GeoCoord{Lat: fc.Lat, Lon: fc.Lon}
	}

	// invert the gnomonic scaling applied in GeoToHex2d
	if substrate {
		r /= 3.0
	}
	for n := 0; n < res; n++ {
		r /= SqrtSeven
	}
	r *= ResZeroGnomon
	distRads := math.Atan(r)

	theta := math.Atan2(v.Y, v.X)
	if IsResClassIII(res) {
		theta += ClassIIIRotRads
	}

	az := faceijk.FaceAxisAzimuth(f.Face) - theta
	fc := faceijk.FaceCenter(f.Face)
	return geoAzDistanceRads(GeoCoord{Lat: fc.Lat, Lon: fc.Lon}, az, distRads)
}

// GeoBoundaryFor returns h's boundary vertices, walking the substrate
// vertex table produced by the faceijk layer and converting each back to
// geographic coordinates.
func (h Index) GeoBoundaryFor() (GeoBoundary, error) {
	if h.Mode() != modeCell {
		return GeoBoundary{}, ErrMalformedIndex
	}
	f := h3ToFaceIjk(h)
	res := h.Resolution()

	if h.IsPentagon() {
		verts, substrateRes := faceijk.FaceIjkPentToVerts(f, res)
		b := GeoBoundary{Verts: make([]GeoCoord, len(verts))}
		for i, v := range verts {
			b.Verts[i] = faceIjkToGeo(v, substrateRes, true)
		}
		return b, nil
	}

	verts, substrateRes := faceijk.FaceIjkToVerts(f, res)
	b := GeoBoundary{Verts: make([]GeoCoord, len(verts))}
	for i, v := range verts {
		b.Verts[i] = faceIjkToGeo(v, substrateRes, true)
	}
	return b, nil
}
