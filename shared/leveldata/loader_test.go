package leveldata

import (
	"errors"
	"math"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tmx(groups ...string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="20" tilewidth="16" tileheight="16" infinite="0">
` + strings.Join(groups, "\n") + `
</map>`)
}

const cameraObject = `<object id="1" name="camera" x="160" y="290">
   <properties>
    <property name="z" type="float" value="7"/>
    <property name="pitch" type="float" value="90"/>
    <property name="fovy" type="float" value="60"/>
   </properties>
  </object>`

func group(name string, objects ...string) string {
	return `<objectgroup id="1" name="` + name + `">` + strings.Join(objects, "\n") + `</objectgroup>`
}

func load(t *testing.T, body []byte) (*SceneData, error) {
	t.Helper()
	fsys := fstest.MapFS{"scenes/test.tmx": &fstest.MapFile{Data: body}}
	return LoadScene(fsys, "scenes/test.tmx")
}

func TestLoadSceneCamera(t *testing.T) {
	data, err := load(t, tmx(group(GroupCameras, cameraObject)))
	require.NoError(t, err)

	assert.Equal(t, 320, data.MapWidth)
	assert.Equal(t, 320, data.MapHeight)
	assert.InDelta(t, 0, data.Camera.Position.Sub(mgl64.Vec3{0, -130, 7}).Len(), 1e-9, "got %v", data.Camera.Position)
	assert.InDelta(t, 0.0, data.Camera.Yaw, 1e-9)
	assert.InDelta(t, math.Pi/2, data.Camera.Pitch, 1e-9)
	assert.InDelta(t, math.Pi/3, data.Camera.Fovy, 1e-9)

	// Antagonist defaults apply without an Antagonist group
	assert.Equal(t, mgl64.Vec3{2.5, 2.5, 3.0}, data.Antagonist.Scale)
}

func TestLoadSceneCameraCount(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "no cameras", body: tmx(group(GroupProps))},
		{name: "two cameras", body: tmx(group(GroupCameras, cameraObject, strings.Replace(cameraObject, `id="1"`, `id="2"`, 1)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.body)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCameraCount), "got %v", err)
		})
	}
}

func TestLoadSceneProps(t *testing.T) {
	stall := `<object id="5" name="stall" x="148" y="158">
   <properties>
    <property name="z" type="float" value="10"/>
    <property name="w" type="float" value="1"/>
    <property name="d" type="float" value="24"/>
    <property name="h" type="float" value="20"/>
    <property name="color" type="string" value="#4a6fa5"/>
   </properties>
  </object>`
	antagonist := `<object id="6" name="antagonist" x="160" y="160">
   <properties>
    <property name="sz" type="float" value="4"/>
    <property name="color" type="string" value="#80ff0000"/>
   </properties>
  </object>`

	data, err := load(t, tmx(
		group(GroupCameras, cameraObject),
		group(GroupProps, stall),
		group(GroupAntagonist, antagonist),
	))
	require.NoError(t, err)

	require.Len(t, data.Props, 1)
	p := data.Props[0]
	assert.Equal(t, "stall", p.Name)
	assert.Equal(t, mgl64.Vec3{-12, 2, 10}, p.Position)
	assert.Equal(t, mgl64.Vec3{1, 24, 20}, p.Size)
	assert.Equal(t, uint8(0x4a), p.Color.R)
	assert.Equal(t, uint8(0xa5), p.Color.B)
	assert.Equal(t, uint8(255), p.Color.A)

	assert.Equal(t, mgl64.Vec3{2.5, 2.5, 4}, data.Antagonist.Scale)
	assert.Equal(t, uint8(0x80), data.Antagonist.Color.A)
	assert.Equal(t, uint8(0xff), data.Antagonist.Color.R)
}

func TestLoadSceneBadColor(t *testing.T) {
	bad := `<object id="5" name="stall" x="0" y="0">
   <properties><property name="color" type="string" value="#zz"/></properties>
  </object>`
	_, err := load(t, tmx(group(GroupCameras, cameraObject), group(GroupProps, bad)))
	assert.Error(t, err)
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := LoadScene(fstest.MapFS{}, "scenes/none.tmx")
	assert.Error(t, err)
}

func TestRestroomScene(t *testing.T) {
	data, err := LoadScene(os.DirFS("../../assets"), "scenes/restroom.tmx")
	require.NoError(t, err)

	assert.InDelta(t, 0, data.Camera.Position.Sub(mgl64.Vec3{0, -130, 7}).Len(), 1e-9)
	assert.NotEmpty(t, data.Goal)
	assert.NotEmpty(t, data.Props)
	for _, g := range data.Goal {
		assert.LessOrEqual(t, math.Abs(g.Position.X()), 10.0, g.Name)
		assert.LessOrEqual(t, math.Abs(g.Position.Y()), 10.0, g.Name)
	}
}
