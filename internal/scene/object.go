// Package scene models the host editor's objects as read by the exporter.
package scene

import (
	"github.com/Faultbox/scenesync/pkg/formats"
	"github.com/Faultbox/scenesync/pkg/math"
)

// Metadata defaults applied when a scene leaves a field out.
const (
	DefaultTextureName    = "generic"
	DefaultRenderDistance = 299.0
	DefaultIDEFlag        = formats.FlagDefault
)

// ObjectType is the host object type. Only meshes are exported.
type ObjectType string

const (
	TypeMesh   ObjectType = "MESH"
	TypeEmpty  ObjectType = "EMPTY"
	TypeLight  ObjectType = "LIGHT"
	TypeCamera ObjectType = "CAMERA"
)

// OrientationKind tells which representation an Orientation carries.
type OrientationKind int

const (
	OrientationEuler OrientationKind = iota
	OrientationQuat
	OrientationMatrix
)

// String returns a human-readable kind name.
func (k OrientationKind) String() string {
	switch k {
	case OrientationEuler:
		return "euler"
	case OrientationQuat:
		return "quaternion"
	case OrientationMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// Orientation is a world-space rotation in host convention.
type Orientation struct {
	Kind   OrientationKind
	Euler  math.Vec3 // XYZ radians
	Quat   math.Quat
	Matrix math.Mat4 // full world matrix; also carries the translation
}

// IDEProperties are the per-object model definition settings.
type IDEProperties struct {
	TextureName    string
	Flag           formats.IDEFlag
	RenderDistance float64
}

// DefaultIDEProperties returns the settings of a freshly tagged object.
func DefaultIDEProperties() IDEProperties {
	return IDEProperties{
		TextureName:    DefaultTextureName,
		Flag:           DefaultIDEFlag,
		RenderDistance: DefaultRenderDistance,
	}
}

// DFFProperties is the structured classification property group.
type DFFProperties struct {
	Type string // "" (none) or "COL"
}

// Object is a read-only view of a host object plus its attached metadata.
type Object struct {
	ID          string
	Name        string
	Type        ObjectType
	Collection  string
	Selected    bool
	Location    math.Vec3
	Orientation Orientation
	Materials   []string
	IDE         IDEProperties
	DFF         *DFFProperties // nil when the property group is not registered
	Custom      map[string]string
}

// IsMesh reports whether the object is a mesh.
func (o *Object) IsMesh() bool {
	return o.Type == TypeMesh
}

// WorldLocation returns the world-space position. A world matrix, when
// present, takes precedence over Location.
func (o *Object) WorldLocation() math.Vec3 {
	if o.Orientation.Kind == OrientationMatrix {
		return o.Orientation.Matrix.Translation()
	}
	return o.Location
}

// WorldRotation returns the world-space rotation as a quaternion.
func (o *Object) WorldRotation() math.Quat {
	switch o.Orientation.Kind {
	case OrientationQuat:
		return o.Orientation.Quat
	case OrientationMatrix:
		return o.Orientation.Matrix.ToQuat()
	default:
		return math.QuatFromEuler(o.Orientation.Euler)
	}
}

// Scene is an ordered set of objects. Object order is selection order.
type Scene struct {
	Name    string
	StartID int // 0 when the scene does not set one
	Objects []*Object
}

// Selected returns the selected mesh objects in scene order.
func (s *Scene) Selected() []*Object {
	var out []*Object
	for _, o := range s.Objects {
		if o.Selected && o.IsMesh() {
			out = append(out, o)
		}
	}
	return out
}
