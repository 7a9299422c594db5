package h3grid

import "math"

// vec3d is a Cartesian 3-vector, used for unit-sphere points and icosahedron
// geometry.
type vec3d struct {
	x, y, z float64
}

func (a vec3d) add(b vec3d) vec3d { return vec3d{a.x + b.x, a.y + b.y, a.z + b.z} }
func (a vec3d) sub(b vec3d) vec3d { return vec3d{a.x - b.x, a.y - b.y, a.z - b.z} }
func (a vec3d) scale(s float64) vec3d { return vec3d{a.x * s, a.y * s, a.z * s} }
func (a vec3d) dot(b vec3d) float64 { return a.x*b.x + a.y*b.y + a.z*b.z }

func (a vec3d) pointSquareDist(b vec3d) float64 {
	d := a.sub(b)
	return d.dot(d)
}

// vec2d is a planar hex2d coordinate.
type vec2d struct {
	x, y float64
}

func (v vec2d) mag() float64 { return math.Sqrt(v.x*v.x + v.y*v.y) }
