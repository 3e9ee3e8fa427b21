// Package vec provides 3D vector math for the flight simulation.
// Coordinates are Y-up: X east, Y altitude, Z north.
package vec

import "math"

type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero = Vec3{}
	Up   = Vec3{Y: 1}
	Down = Vec3{Y: -1}
)

func New(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector, or the zero vector when the
// magnitude is below epsilon (guards the divide in downstream force code).
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < Epsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Horizontal zeroes the vertical component.
func (v Vec3) Horizontal() Vec3 { return Vec3{v.X, 0, v.Z} }

func (v Vec3) IsValid() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Epsilon is the near-zero speed below which normalization-dependent
// aerodynamic forces are treated as zero.
const Epsilon = 1e-3
