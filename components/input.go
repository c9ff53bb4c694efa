package components

import (
	"github.com/yohamta/donburi"
)

// ButtonState counts presses since the last tick and tracks whether the key is held.
type ButtonState struct {
	Downs   int
	Pressed bool
}

// InputData stores the four movement buttons.
type InputData struct {
	Forward ButtonState
	Back    ButtonState
	Left    ButtonState
	Right   ButtonState
}

var Input = donburi.NewComponentType[InputData]()

// ResetDowns clears the per-tick press counters.
func (i *InputData) ResetDowns() {
	i.Forward.Downs = 0
	i.Back.Downs = 0
	i.Left.Downs = 0
	i.Right.Downs = 0
}

// LookData is the persistent mouse-look state of the player camera.
type LookData struct {
	Yaw      float64 // radians around world +Z
	Pitch    float64 // radians from straight down
	Captured bool    // cursor is grabbed and motion rotates the camera
}

var Look = donburi.NewComponentType[LookData]()
