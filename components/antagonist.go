package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AntagonistData stores where the antagonist lurks and its death-sequence rise.
type AntagonistData struct {
	Anchor mgl64.Vec3   // trigger centre and sound position
	Rise   *gween.Tween // height above Anchor during the death sequence, nil otherwise
}

var Antagonist = donburi.NewComponentType[AntagonistData]()
