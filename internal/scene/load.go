package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/scenesync/internal/logger"
	"github.com/Faultbox/scenesync/pkg/formats"
	"github.com/Faultbox/scenesync/pkg/math"
)

// ErrInvalidScene is returned for scene files with malformed object data.
var ErrInvalidScene = errors.New("invalid scene")

// objectNamespace seeds the name-based UUIDs given to objects without an id.
var objectNamespace = uuid.MustParse("6f1c2d0e-58a4-4b7e-9a43-2e6d7c1b0f55")

// fileScene is the on-disk layout of a scene description (YAML or JSON).
type fileScene struct {
	Name    string       `yaml:"name" json:"name"`
	StartID int          `yaml:"start_id,omitempty" json:"start_id,omitempty"`
	Objects []fileObject `yaml:"objects" json:"objects"`
}

type fileObject struct {
	ID            string            `yaml:"id,omitempty" json:"id,omitempty"`
	Name          string            `yaml:"name" json:"name"`
	Type          string            `yaml:"type,omitempty" json:"type,omitempty"`
	Collection    string            `yaml:"collection,omitempty" json:"collection,omitempty"`
	Selected      *bool             `yaml:"selected,omitempty" json:"selected,omitempty"`
	Location      []float64         `yaml:"location,omitempty,flow" json:"location,omitempty"`
	RotationEuler []float64         `yaml:"rotation_euler,omitempty,flow" json:"rotation_euler,omitempty"`
	RotationQuat  []float64         `yaml:"rotation_quat,omitempty,flow" json:"rotation_quat,omitempty"`
	Matrix        []float64         `yaml:"matrix,omitempty,flow" json:"matrix,omitempty"`
	Materials     []string          `yaml:"materials,omitempty,flow" json:"materials,omitempty"`
	IDE           *fileIDE          `yaml:"ide,omitempty" json:"ide,omitempty"`
	DFF           *fileDFF          `yaml:"dff,omitempty" json:"dff,omitempty"`
	Custom        map[string]string `yaml:"custom,omitempty" json:"custom,omitempty"`
}

type fileIDE struct {
	TextureName    *string  `yaml:"texture_name,omitempty" json:"texture_name,omitempty"`
	Flag           string   `yaml:"ide_flag,omitempty" json:"ide_flag,omitempty"`
	RenderDistance *float64 `yaml:"render_distance,omitempty" json:"render_distance,omitempty"`
}

type fileDFF struct {
	Type string `yaml:"type" json:"type"`
}

// Load reads a scene description from path. JSON files are accepted as
// they are valid YAML.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene description.
func Parse(data []byte) (*Scene, error) {
	var fs fileScene
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, err
	}

	s := &Scene{
		Name:    fs.Name,
		StartID: fs.StartID,
		Objects: make([]*Object, 0, len(fs.Objects)),
	}
	for i, fo := range fs.Objects {
		obj, err := fo.toObject(fs.Name, i)
		if err != nil {
			return nil, fmt.Errorf("object %d (%q): %w", i, fo.Name, err)
		}
		s.Objects = append(s.Objects, obj)
	}

	logger.Debug("scene parsed",
		zap.String("scene", s.Name),
		zap.Int("objects", len(s.Objects)))
	return s, nil
}

func (fo fileObject) toObject(sceneName string, index int) (*Object, error) {
	obj := &Object{
		ID:         fo.ID,
		Name:       fo.Name,
		Type:       ObjectType(strings.ToUpper(strings.TrimSpace(fo.Type))),
		Collection: fo.Collection,
		Selected:   fo.Selected == nil || *fo.Selected,
		Materials:  fo.Materials,
		IDE:        DefaultIDEProperties(),
		Custom:     fo.Custom,
	}
	if obj.Type == "" {
		obj.Type = TypeMesh
	}
	if obj.ID == "" {
		key := fmt.Sprintf("%s/%d/%s", sceneName, index, fo.Name)
		obj.ID = uuid.NewSHA1(objectNamespace, []byte(key)).String()
	}

	switch len(fo.Location) {
	case 0:
	case 3:
		obj.Location = math.Vec3{X: fo.Location[0], Y: fo.Location[1], Z: fo.Location[2]}
	default:
		return nil, fmt.Errorf("%w: location needs 3 values, got %d", ErrInvalidScene, len(fo.Location))
	}

	orient, err := fo.orientation()
	if err != nil {
		return nil, err
	}
	obj.Orientation = orient

	if fo.IDE != nil {
		if fo.IDE.TextureName != nil {
			obj.IDE.TextureName = *fo.IDE.TextureName
		}
		if fo.IDE.RenderDistance != nil {
			obj.IDE.RenderDistance = *fo.IDE.RenderDistance
		}
		flag, err := formats.ParseIDEFlag(fo.IDE.Flag)
		if err != nil {
			logger.Warn("unknown IDE flag, using default",
				zap.String("object", fo.Name),
				zap.String("flag", fo.IDE.Flag))
		}
		obj.IDE.Flag = flag
	}

	if fo.DFF != nil {
		obj.DFF = &DFFProperties{Type: fo.DFF.Type}
	}
	return obj, nil
}

func (fo fileObject) orientation() (Orientation, error) {
	set := 0
	for _, v := range [][]float64{fo.RotationEuler, fo.RotationQuat, fo.Matrix} {
		if len(v) > 0 {
			set++
		}
	}
	if set > 1 {
		return Orientation{}, fmt.Errorf("%w: only one of rotation_euler, rotation_quat, matrix may be set", ErrInvalidScene)
	}

	switch {
	case len(fo.Matrix) > 0:
		if len(fo.Matrix) != 16 {
			return Orientation{}, fmt.Errorf("%w: matrix needs 16 values, got %d", ErrInvalidScene, len(fo.Matrix))
		}
		var m math.Mat4
		copy(m[:], fo.Matrix)
		return Orientation{Kind: OrientationMatrix, Matrix: m}, nil
	case len(fo.RotationQuat) > 0:
		if len(fo.RotationQuat) != 4 {
			return Orientation{}, fmt.Errorf("%w: rotation_quat needs 4 values, got %d", ErrInvalidScene, len(fo.RotationQuat))
		}
		q := fo.RotationQuat
		return Orientation{Kind: OrientationQuat, Quat: math.Quat{X: q[0], Y: q[1], Z: q[2], W: q[3]}}, nil
	case len(fo.RotationEuler) > 0:
		if len(fo.RotationEuler) != 3 {
			return Orientation{}, fmt.Errorf("%w: rotation_euler needs 3 values, got %d", ErrInvalidScene, len(fo.RotationEuler))
		}
		e := fo.RotationEuler
		return Orientation{Kind: OrientationEuler, Euler: math.Vec3{X: e[0], Y: e[1], Z: e[2]}}, nil
	default:
		return Orientation{Kind: OrientationEuler}, nil
	}
}
