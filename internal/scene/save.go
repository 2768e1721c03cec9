package scene

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/scenesync/pkg/math"
)

// Save writes the scene back to path. Paths ending in .json are written as
// indented JSON; everything else as YAML.
func (s *Scene) Save(path string) error {
	data, err := s.Marshal(strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the scene in its file layout.
func (s *Scene) Marshal(asJSON bool) ([]byte, error) {
	fs := fileScene{
		Name:    s.Name,
		StartID: s.StartID,
		Objects: make([]fileObject, 0, len(s.Objects)),
	}
	for _, o := range s.Objects {
		fs.Objects = append(fs.Objects, fromObject(o))
	}

	if asJSON {
		data, err := json.MarshalIndent(fs, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return yaml.Marshal(fs)
}

func fromObject(o *Object) fileObject {
	texture := o.IDE.TextureName
	distance := o.IDE.RenderDistance

	fo := fileObject{
		ID:         o.ID,
		Name:       o.Name,
		Type:       string(o.Type),
		Collection: o.Collection,
		Materials:  o.Materials,
		IDE: &fileIDE{
			TextureName:    &texture,
			Flag:           strconv.FormatUint(uint64(o.IDE.Flag), 10),
			RenderDistance: &distance,
		},
		Custom: o.Custom,
	}
	if !o.Selected {
		selected := false
		fo.Selected = &selected
	}
	if o.Location != (math.Vec3{}) {
		fo.Location = []float64{o.Location.X, o.Location.Y, o.Location.Z}
	}

	switch o.Orientation.Kind {
	case OrientationMatrix:
		fo.Matrix = append([]float64(nil), o.Orientation.Matrix[:]...)
	case OrientationQuat:
		q := o.Orientation.Quat
		fo.RotationQuat = []float64{q.X, q.Y, q.Z, q.W}
	default:
		if e := o.Orientation.Euler; e.X != 0 || e.Y != 0 || e.Z != 0 {
			fo.RotationEuler = []float64{e.X, e.Y, e.Z}
		}
	}

	if o.DFF != nil {
		fo.DFF = &fileDFF{Type: o.DFF.Type}
	}
	return fo
}
