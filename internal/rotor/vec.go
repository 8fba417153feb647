package rotor

import "math"

// Vec3 is a position in rotor-fixed coordinates: X and Y span the plane of
// rotation, Z runs along the spin axis. Units are meters.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// PlanarNorm is the magnitude of the projection onto the rotation plane.
// The axial coordinate does not contribute to radial imbalance.
func (v Vec3) PlanarNorm() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec3) IsFinite() bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
