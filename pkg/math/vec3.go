// Package math provides the vector, quaternion and matrix types used to
// convert scene transforms into placement records. Rotation conversions
// are backed by mathgl's mgl64.
package math

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Mul returns the component-wise product of v and other.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Array returns the components as a fixed-size array.
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
