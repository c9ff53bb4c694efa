package leveldata

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// ErrCameraCount is returned when the scene does not contain exactly one camera.
var ErrCameraCount = errors.New("expecting scene to have exactly one camera")

var (
	defaultPropColor       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	defaultAntagonistColor = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	defaultAntagonistSize  = mgl64.Vec3{2, 2, 6}
	defaultAntagonistScale = mgl64.Vec3{2.5, 2.5, 3.0}
)

const defaultFovy = 60.0 // degrees

// LoadScene parses a TMX file from fsys. Objects are read from the Cameras,
// Goal, Props and Antagonist object groups; other layers are ignored.
func LoadScene(fsys fs.FS, tmxPath string) (*SceneData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &SceneData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		Antagonist: AntagonistSpawn{
			Size:  defaultAntagonistSize,
			Scale: defaultAntagonistScale,
			Color: defaultAntagonistColor,
		},
	}

	var cameras []CameraSpawn
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupCameras:
			for _, o := range og.Objects {
				cameras = append(cameras, CameraSpawn{
					Position: data.worldPos(o),
					Yaw:      mgl64.DegToRad(floatProp(o.Properties, "yaw", 0)),
					Pitch:    mgl64.DegToRad(floatProp(o.Properties, "pitch", 90)),
					Fovy:     mgl64.DegToRad(floatProp(o.Properties, "fovy", defaultFovy)),
				})
			}
		case GroupGoal:
			for _, o := range og.Objects {
				p, err := data.prop(o)
				if err != nil {
					return nil, err
				}
				data.Goal = append(data.Goal, p)
			}
		case GroupProps:
			for _, o := range og.Objects {
				p, err := data.prop(o)
				if err != nil {
					return nil, err
				}
				data.Props = append(data.Props, p)
			}
		case GroupAntagonist:
			for _, o := range og.Objects {
				p, err := data.prop(o)
				if err != nil {
					return nil, err
				}
				data.Antagonist.Size = p.Size
				data.Antagonist.Color = p.Color
				data.Antagonist.Scale = mgl64.Vec3{
					floatProp(o.Properties, "sx", defaultAntagonistScale[0]),
					floatProp(o.Properties, "sy", defaultAntagonistScale[1]),
					floatProp(o.Properties, "sz", defaultAntagonistScale[2]),
				}
			}
		}
	}

	if len(cameras) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrCameraCount, len(cameras))
	}
	data.Camera = cameras[0]

	return data, nil
}

// worldPos maps Tiled pixel coordinates (y down, origin top-left) to world
// coordinates centred on the map with y pointing up the screen.
func (d *SceneData) worldPos(o *tiled.Object) mgl64.Vec3 {
	return mgl64.Vec3{
		o.X - float64(d.MapWidth)/2,
		float64(d.MapHeight)/2 - o.Y,
		floatProp(o.Properties, "z", 0),
	}
}

func (d *SceneData) prop(o *tiled.Object) (Prop, error) {
	c := defaultPropColor
	if hex := o.Properties.GetString("color"); hex != "" {
		parsed, err := parseHexColor(hex)
		if err != nil {
			return Prop{}, fmt.Errorf("object %q: %w", o.Name, err)
		}
		c = parsed
	}
	return Prop{
		Name:     o.Name,
		Position: d.worldPos(o),
		Size: mgl64.Vec3{
			floatProp(o.Properties, "w", 1),
			floatProp(o.Properties, "d", 1),
			floatProp(o.Properties, "h", 1),
		},
		Color: c,
	}, nil
}

func floatProp(props tiled.Properties, name string, def float64) float64 {
	if len(props.Get(name)) == 0 {
		return def
	}
	v := props.GetFloat(name)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// parseHexColor accepts "#rrggbb" or "#aarrggbb" as written by Tiled.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c := color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	if len(s) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}
