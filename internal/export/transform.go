package export

import (
	stdmath "math"

	"github.com/Faultbox/scenesync/internal/config"
	"github.com/Faultbox/scenesync/internal/scene"
	"github.com/Faultbox/scenesync/pkg/math"
)

// SignTable holds the per-axis factors mapping host coordinates to the
// target convention.
type SignTable struct {
	Position [3]float64 // x, y, z
	Rotation [4]float64 // x, y, z, w
}

// SanAndreas maps Blender (right-handed, Z-up) to GTA SA placement.
// Positions share the same axes; IPL rotations store the x and z
// components negated.
var SanAndreas = SignTable{
	Position: [3]float64{1, 1, 1},
	Rotation: [4]float64{-1, 1, -1, 1},
}

// Inverse returns the table that undoes t.
func (t SignTable) Inverse() SignTable {
	var inv SignTable
	for i, v := range t.Position {
		inv.Position[i] = 1 / v
	}
	for i, v := range t.Rotation {
		inv.Rotation[i] = 1 / v
	}
	return inv
}

// Apply maps a position and a rotation through the table.
func (t SignTable) Apply(pos math.Vec3, rot math.Quat) (math.Vec3, math.Quat) {
	p := pos.Mul(math.Vec3{X: t.Position[0], Y: t.Position[1], Z: t.Position[2]})
	q := math.Quat{
		X: rot.X * t.Rotation[0],
		Y: rot.Y * t.Rotation[1],
		Z: rot.Z * t.Rotation[2],
		W: rot.W * t.Rotation[3],
	}
	return p, q
}

// Converter maps object transforms to IPL placement values.
type Converter struct {
	Table     SignTable
	Offset    math.Quat // applied as Offset * rotation before the table
	Normalize bool
}

// NewConverter builds the converter for cfg.
func NewConverter(cfg config.ExportConfig) Converter {
	c := Converter{
		Table:     SanAndreas,
		Offset:    math.QuatIdentity(),
		Normalize: cfg.NormalizeRotation,
	}
	if cfg.ApplyDefaultRotation {
		d := cfg.DefaultRotation
		c.Offset = math.QuatFromEuler(math.Vec3{
			X: d[0] * stdmath.Pi / 180,
			Y: d[1] * stdmath.Pi / 180,
			Z: d[2] * stdmath.Pi / 180,
		})
	}
	return c
}

// Convert returns the target position and rotation for a host transform.
func (c Converter) Convert(pos math.Vec3, rot math.Quat) (math.Vec3, math.Quat) {
	if c.hasOffset() {
		rot = c.Offset.Mul(rot)
	}
	if c.Normalize {
		rot = rot.Normalize()
	}
	return c.Table.Apply(pos, rot)
}

// Revert undoes Convert. Normalization is not undone.
func (c Converter) Revert(pos math.Vec3, rot math.Quat) (math.Vec3, math.Quat) {
	pos, rot = c.Table.Inverse().Apply(pos, rot)
	if c.hasOffset() {
		rot = c.Offset.Conjugate().Mul(rot)
	}
	return pos, rot
}

// hasOffset reports whether a default rotation is configured. The zero
// Quat counts as no offset.
func (c Converter) hasOffset() bool {
	return c.Offset != math.QuatIdentity() && c.Offset != (math.Quat{})
}

// ConvertObject converts the world transform of obj.
func (c Converter) ConvertObject(obj *scene.Object) (math.Vec3, math.Quat) {
	return c.Convert(obj.WorldLocation(), obj.WorldRotation())
}
