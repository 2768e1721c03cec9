package math

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a 4x4 matrix in column-major order, laid out like mgl64.Mat4.
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float64

// Translation returns the translation part of an affine matrix.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// SetTranslation returns a copy of m with its translation replaced.
func (m Mat4) SetTranslation(t Vec3) Mat4 {
	m[12], m[13], m[14] = t.X, t.Y, t.Z
	return m
}

// ToQuat extracts the rotation of an affine matrix.
// Scale is divided out of each basis column first; a degenerate (zero)
// column leaves the matrix unusable and the identity rotation is returned.
func (m Mat4) ToQuat() Quat {
	var cols [3]mgl64.Vec3
	for c := range cols {
		col := mgl64.Vec3{m[c*4], m[c*4+1], m[c*4+2]}
		if col.Len() == 0 {
			return QuatIdentity()
		}
		cols[c] = col.Normalize()
	}

	rot := mgl64.Mat3FromCols(cols[0], cols[1], cols[2]).Mat4()
	return QuatFromMGL(mgl64.Mat4ToQuat(rot))
}
