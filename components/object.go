package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/planar/plane"
)

type ObjectData struct {
	*plane.Sprite
}

var Object = donburi.NewComponentType[ObjectData]()
