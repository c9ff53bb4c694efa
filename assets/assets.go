package assets

import (
	"embed"
	"io/fs"
)

// ScenePath is the play scene inside FS.
const ScenePath = "scenes/restroom.tmx"

var (
	//go:embed all:scenes
	sceneFS embed.FS

	//go:embed all:audio
	audioFS embed.FS
)

// Scenes returns the embedded scene files.
func Scenes() fs.FS {
	return sceneFS
}
