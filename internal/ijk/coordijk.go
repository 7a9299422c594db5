// Package ijk implements the (i,j,k) hex-lattice coordinate algebra:
// normalization, the six rotations, aperture-3/aperture-7 up/down
// transforms, and conversion to/from cube and two-coordinate IJ systems.
package ijk

// CoordIJK is a signed ijk coordinate in the H3 IJK+ system. The normalized
// form has at least one component equal to zero and the other two
// non-negative.
type CoordIJK struct {
	I, J, K int
}

// UnitVecs are the seven unit vectors, indexed by direction digit: 0=center,
// 1=K, 2=J, 3=JK, 4=I, 5=IK, 6=IJ (spec.md §3 direction alphabet).
var UnitVecs = [7]CoordIJK{
	{0, 0, 0}, // CENTER_DIGIT
	{0, 0, 1}, // K_AXES_DIGIT
	{0, 1, 0}, // J_AXES_DIGIT
	{0, 1, 1}, // JK_AXES_DIGIT
	{1, 0, 0}, // I_AXES_DIGIT
	{1, 0, 1}, // IK_AXES_DIGIT
	{1, 1, 0}, // IJ_AXES_DIGIT
}

func (a CoordIJK) Add(b CoordIJK) CoordIJK {
	return CoordIJK{a.I + b.I, a.J + b.J, a.K + b.K}
}

func (a CoordIJK) Sub(b CoordIJK) CoordIJK {
	return CoordIJK{a.I - b.I, a.J - b.J, a.K - b.K}
}

func (a CoordIJK) Scale(s int) CoordIJK {
	return CoordIJK{a.I * s, a.J * s, a.K * s}
}

func (a CoordIJK) Equal(b CoordIJK) bool {
	return a.I == b.I && a.J == b.J && a.K == b.K
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Normalize subtracts min(i,j,k) from all three components so that the
// result has at least one zero component and the other two non-negative.
func (a CoordIJK) Normalize() CoordIJK {
	m := min3(a.I, a.J, a.K)
	if m == 0 {
		return a
	}
	return CoordIJK{a.I - m, a.J - m, a.K - m}
}

// Rotate60CCW rotates the coordinate 60 degrees counter-clockwise about the
// origin: i'=i+k, j'=i+j, k'=j+k, then normalize (the I axis goes to IJ).
func (a CoordIJK) Rotate60CCW() CoordIJK {
	return CoordIJK{a.I + a.K, a.J + a.I, a.K + a.J}.Normalize()
}

// Rotate60CW rotates the coordinate 60 degrees clockwise: i'=i+j, j'=j+k,
// k'=k+i, then normalize (the I axis goes to IK). This is the inverse of
// Rotate60CCW.
func (a CoordIJK) Rotate60CW() CoordIJK {
	return CoordIJK{a.I + a.J, a.J + a.K, a.K + a.I}.Normalize()
}

// Neighbor returns a + UnitVecs[digit], normalized.
func (a CoordIJK) Neighbor(digit int) CoordIJK {
	return a.Add(UnitVecs[digit]).Normalize()
}

// Distance returns the hex-grid distance between a and b:
// max(|Δi|,|Δj|,|Δk|) after normalizing a-b.
func Distance(a, b CoordIJK) int {
	d := a.Sub(b).Normalize()
	return maxAbs3(d.I, d.J, d.K)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxAbs3(i, j, k int) int {
	ai, aj, ak := abs(i), abs(j), abs(k)
	m := ai
	if aj > m {
		m = aj
	}
	if ak > m {
		m = ak
	}
	return m
}

// DownAp7 descends one aperture-7 resolution step, CCW rotation family:
// the i, j and k unit vectors map to (3,0,1), (1,3,0) and (0,1,3).
func (a CoordIJK) DownAp7() CoordIJK {
	i := a.I*3 + a.J*1
	j := a.J*3 + a.K*1
	k := a.I*1 + a.K*3
	return CoordIJK{i, j, k}.Normalize()
}

// DownAp7r descends one aperture-7 resolution step, CW rotation family:
// the i, j and k unit vectors map to (3,1,0), (0,3,1) and (1,0,3).
func (a CoordIJK) DownAp7r() CoordIJK {
	i := a.I*3 + a.K*1
	j := a.I*1 + a.J*3
	k := a.J*1 + a.K*3
	return CoordIJK{i, j, k}.Normalize()
}

// UpAp7 is the inverse of DownAp7: convert to two-coordinate (i,j) with
// i=i-k, j=j-k, apply (1/7)*[[3,-1],[1,2]] with rounding, restore k=0,
// normalize.
func (a CoordIJK) UpAp7() CoordIJK {
	i2 := a.I - a.K
	j2 := a.J - a.K
	i := roundDiv(3*i2-j2, 7)
	j := roundDiv(i2+2*j2, 7)
	return CoordIJK{i, j, 0}.Normalize()
}

// UpAp7r is the inverse of DownAp7r: (1/7)*[[2,1],[-1,3]] with rounding.
func (a CoordIJK) UpAp7r() CoordIJK {
	i2 := a.I - a.K
	j2 := a.J - a.K
	i := roundDiv(2*i2+j2, 7)
	j := roundDiv(-i2+3*j2, 7)
	return CoordIJK{i, j, 0}.Normalize()
}

// DownAp3 descends one aperture-3 resolution step (substrate grid), CCW
// family: the i, j and k unit vectors map to (2,0,1), (1,2,0) and (0,1,2).
func (a CoordIJK) DownAp3() CoordIJK {
	i := a.I*2 + a.J*1
	j := a.J*2 + a.K*1
	k := a.I*1 + a.K*2
	return CoordIJK{i, j, k}.Normalize()
}

// DownAp3r descends one aperture-3 resolution step, CW family: the i, j
// and k unit vectors map to (2,1,0), (0,2,1) and (1,0,2).
func (a CoordIJK) DownAp3r() CoordIJK {
	i := a.I*2 + a.K*1
	j := a.I*1 + a.J*2
	k := a.J*1 + a.K*2
	return CoordIJK{i, j, k}.Normalize()
}

func roundDiv(num, den int) int {
	if num >= 0 {
		return (num + den/2) / den
	}
	return -((-num + den/2) / den)
}

// ToCube converts a normalized IJK+ coordinate to cube coordinates
// (x+y+z=0) by treating k as the shared origin axis.
func (a CoordIJK) ToCube() (x, y, z int) {
	x = a.I - a.K
	z = a.J - a.K
	y = -x - z
	return
}

// FromCube converts cube coordinates back to a normalized CoordIJK.
func FromCube(x, y, z int) CoordIJK {
	_ = y
	return CoordIJK{x, z, 0}.Normalize()
}

// ToIJ projects a normalized CoordIJK onto the two-coordinate (i,j) system
// used by the aperture-7 "up" matrices: i'=i-k, j'=j-k.
func (a CoordIJK) ToIJ() (i, j int) {
	return a.I - a.K, a.J - a.K
}

// FromIJ builds a normalized CoordIJK from a two-coordinate (i,j) pair.
func FromIJ(i, j int) CoordIJK {
	return CoordIJK{i, j, 0}.Normalize()
}

// UnitIjkToDigit normalizes v and matches it against the seven unit
// vectors, returning the digit 0..6, or InvalidDigit (7) if no match.
func UnitIjkToDigit(v CoordIJK) int {
	n := v.Normalize()
	for d, u := range UnitVecs {
		if n.Equal(u) {
			return d
		}
	}
	return 7 // InvalidDigit
}

// RotateDigit60CCW rotates a direction digit 60 degrees CCW in place,
// following the clockwise cycle stated in spec.md §3 reversed:
// K→JK→J→IJ→I→IK→K becomes, CCW, K→IK→I→IJ→J→JK→K.
func RotateDigit60CCW(digit int) int {
	if digit == 0 {
		return 0
	}
	return UnitIjkToDigit(UnitVecs[digit].Rotate60CCW())
}

// RotateDigit60CW rotates a direction digit 60 degrees CW in place.
func RotateDigit60CW(digit int) int {
	if digit == 0 {
		return 0
	}
	return UnitIjkToDigit(UnitVecs[digit].Rotate60CW())
}
