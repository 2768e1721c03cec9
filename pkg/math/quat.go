package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromMGL converts an mgl64 quaternion.
func QuatFromMGL(q mgl64.Quat) Quat {
	return Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// MGL returns q as an mgl64 quaternion.
func (q Quat) MGL() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// QuatFromEuler converts XYZ Euler angles (radians) to a quaternion.
// X is applied first and Z last, so the result equals Rz * Ry * Rx.
func QuatFromEuler(e Vec3) Quat {
	return QuatFromMGL(mgl64.AnglesToQuat(e.Z, e.Y, e.X, mgl64.ZYX))
}

// Length returns the quaternion norm.
func (q Quat) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns a normalized quaternion.
// A zero-length quaternion is returned unchanged, unlike mgl64 which
// turns it into the identity.
func (q Quat) Normalize() Quat {
	length := q.Length()
	if length == 0 {
		return q
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Conjugate returns the quaternion with its vector part negated.
func (q Quat) Conjugate() Quat {
	return QuatFromMGL(q.MGL().Conjugate())
}

// Mul multiplies two quaternions (combines rotations).
// The result applies other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return QuatFromMGL(q.MGL().Mul(other.MGL()))
}
