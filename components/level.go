package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/planar/leveldata"
	"github.com/automoto/planar/plane"
)

type LevelData struct {
	Level   *leveldata.Level
	Sprites *plane.SpritePlane
}

var Level = donburi.NewComponentType[LevelData]()
