package scenes

import "github.com/yohamta/donburi/ecs"

// SceneChanger switches the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// LayerDefault is the only render layer.
const LayerDefault ecs.LayerID = iota
