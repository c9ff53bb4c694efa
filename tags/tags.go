package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Antagonist = donburi.NewTag().SetName("Antagonist")
	Goal       = donburi.NewTag().SetName("Goal")
	Prop       = donburi.NewTag().SetName("Prop")
)
