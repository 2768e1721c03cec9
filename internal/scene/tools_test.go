package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenesync/pkg/math"
)

func testObjects() []*Object {
	return []*Object{
		{Name: "Cube", Type: TypeMesh, Location: math.Vec3{X: 1, Y: 2, Z: 3}, Materials: []string{"wood"}, IDE: DefaultIDEProperties()},
		{Name: "Cube.001", Type: TypeMesh, Orientation: Orientation{Kind: OrientationMatrix, Matrix: math.Mat4(mgl64.Translate3D(4, 5, 6))}, Materials: []string{"metal"}, IDE: DefaultIDEProperties()},
		{Name: "Lamp", Type: TypeLight, Materials: []string{"glow"}},
	}
}

func TestBatchRename(t *testing.T) {
	objs := testObjects()
	n, err := BatchRename(objs, "Pier")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "Pier_1", objs[0].Name)
	assert.Equal(t, "Pier_2", objs[1].Name)
	assert.Equal(t, "Pier_3", objs[2].Name)

	_, err = BatchRename(objs, "  ")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = BatchRename(nil, "Pier")
	assert.ErrorIs(t, err, ErrNoObjects)
}

func TestResetLocation(t *testing.T) {
	objs := testObjects()
	n, err := ResetLocation(objs)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, o := range objs {
		assert.Equal(t, math.Vec3{}, o.WorldLocation(), o.Name)
	}

	_, err = ResetLocation(nil)
	assert.ErrorIs(t, err, ErrNoObjects)
}

func TestRemoveMaterials(t *testing.T) {
	objs := testObjects()
	n, err := RemoveMaterials(objs)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Empty(t, objs[0].Materials)
	assert.Empty(t, objs[1].Materials)
	assert.Equal(t, []string{"glow"}, objs[2].Materials)
}

func TestSetTexture(t *testing.T) {
	objs := testObjects()
	n, err := SetTexture(objs, " docks_txd ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "docks_txd", objs[0].IDE.TextureName)
	assert.Equal(t, "docks_txd", objs[1].IDE.TextureName)

	_, err = SetTexture(objs, "")
	assert.ErrorIs(t, err, ErrEmptyTexture)
}
