package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/scenesync/pkg/math"
)

// Errors returned by the batch editing helpers.
var (
	ErrNoObjects    = errors.New("no objects selected")
	ErrEmptyTexture = errors.New("texture name is empty")
	ErrEmptyName    = errors.New("base name is empty")
)

// BatchRename renames objs to base_1, base_2, ... in order.
func BatchRename(objs []*Object, base string) (int, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return 0, ErrEmptyName
	}
	if len(objs) == 0 {
		return 0, ErrNoObjects
	}
	for i, o := range objs {
		o.Name = fmt.Sprintf("%s_%d", base, i+1)
	}
	return len(objs), nil
}

// ResetLocation moves objs to the origin. Rotation is kept.
func ResetLocation(objs []*Object) (int, error) {
	if len(objs) == 0 {
		return 0, ErrNoObjects
	}
	for _, o := range objs {
		o.Location = math.Vec3{}
		if o.Orientation.Kind == OrientationMatrix {
			o.Orientation.Matrix = o.Orientation.Matrix.SetTranslation(math.Vec3{})
		}
	}
	return len(objs), nil
}

// RemoveMaterials clears the material slots of every mesh in objs and
// returns how many meshes were changed.
func RemoveMaterials(objs []*Object) (int, error) {
	if len(objs) == 0 {
		return 0, ErrNoObjects
	}
	count := 0
	for _, o := range objs {
		if !o.IsMesh() {
			continue
		}
		o.Materials = nil
		count++
	}
	return count, nil
}

// SetTexture assigns the texture dictionary name to every mesh in objs.
func SetTexture(objs []*Object, txd string) (int, error) {
	txd = strings.TrimSpace(txd)
	if txd == "" {
		return 0, ErrEmptyTexture
	}
	count := 0
	for _, o := range objs {
		if !o.IsMesh() {
			continue
		}
		o.IDE.TextureName = txd
		count++
	}
	return count, nil
}
