package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func quatNear(a, b Quat) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps && math.Abs(a.W-b.W) <= eps
}

// sameRotation treats q and -q as equal.
func sameRotation(a, b Quat) bool {
	return quatNear(a, b) || quatNear(a, Quat{-b.X, -b.Y, -b.Z, -b.W})
}

func axisAngle(axis mgl64.Vec3, angle float64) Quat {
	return QuatFromMGL(mgl64.QuatRotate(angle, axis))
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatMGLRoundTrip(t *testing.T) {
	q := Quat{X: 0.1, Y: -0.2, Z: 0.3, W: 0.9}
	if got := QuatFromMGL(q.MGL()); got != q {
		t.Errorf("round trip = %v, want %v", got, q)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	if math.Abs(n.Length()-1.0) > eps {
		t.Errorf("Normalized quaternion length should be 1, got %v", n.Length())
	}
}

func TestQuatNormalizeZero(t *testing.T) {
	q := Quat{}
	if got := q.Normalize(); got != q {
		t.Errorf("zero quaternion should pass through, got %v", got)
	}
}

func TestQuatFromEuler(t *testing.T) {
	half := math.Sqrt2 / 2
	tests := []struct {
		name  string
		euler Vec3
		want  Quat
	}{
		{"zero", Vec3{}, QuatIdentity()},
		{"x 90", Vec3{X: math.Pi / 2}, Quat{X: half, W: half}},
		{"y 90", Vec3{Y: math.Pi / 2}, Quat{Y: half, W: half}},
		{"z 180", Vec3{Z: math.Pi}, Quat{Z: 1}},
		{
			"xyz order",
			Vec3{X: 0.3, Y: -0.7, Z: 1.1},
			axisAngle(mgl64.Vec3{0, 0, 1}, 1.1).
				Mul(axisAngle(mgl64.Vec3{0, 1, 0}, -0.7)).
				Mul(axisAngle(mgl64.Vec3{1, 0, 0}, 0.3)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromEuler(tt.euler)
			if !quatNear(got, tt.want) {
				t.Errorf("QuatFromEuler(%v) = %v, want %v", tt.euler, got, tt.want)
			}
		})
	}
}

func TestQuatMul(t *testing.T) {
	q := Quat{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}
	if got := QuatIdentity().Mul(q); !quatNear(got, q) {
		t.Errorf("I * q = %v, want %v", got, q)
	}
	if got := q.Mul(QuatIdentity()); !quatNear(got, q) {
		t.Errorf("q * I = %v, want %v", got, q)
	}

	// Two quarter turns about Z make a half turn.
	z90 := Quat{Z: math.Sqrt2 / 2, W: math.Sqrt2 / 2}
	if got := z90.Mul(z90); !quatNear(got, Quat{Z: 1}) {
		t.Errorf("z90 * z90 = %v, want (0,0,1,0)", got)
	}
}

func TestQuatConjugate(t *testing.T) {
	q := axisAngle(mgl64.Vec3{0, 0, 1}, 0.8)
	if got := q.Conjugate(); got != (Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}) {
		t.Errorf("Conjugate() = %v", got)
	}
	if got := q.Mul(q.Conjugate()); !quatNear(got, QuatIdentity()) {
		t.Errorf("q * conj(q) = %v, want identity", got)
	}
}
