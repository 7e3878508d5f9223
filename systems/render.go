package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/planar/components"
	cfg "github.com/automoto/planar/config"
	"github.com/automoto/planar/plane"
	"github.com/automoto/planar/tags"
)

// DrawLevel renders the tile plane as flat rects, colored by tile type.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	tp := components.Level.Get(entry).Level.Tiles

	for row := 0; row < tp.Rows(); row++ {
		for col := 0; col < tp.Cols(); col++ {
			tile := tp.Tile(col, row)
			if tile == nil {
				continue
			}
			r := tp.TileRect(tile)
			vector.DrawFilledRect(screen,
				float32(r.Left), float32(r.Top),
				float32(r.Width()), float32(r.Height()),
				tileColor(tile), false)
		}
	}
}

func tileColor(tile *plane.Tile) color.RGBA {
	switch {
	case tile.Solid:
		return cfg.Wall
	case tile.Ground:
		return cfg.Platform
	case tile.Collisions:
		return cfg.Sensor
	default:
		return color.RGBA{R: 60, G: 60, B: 70, A: 255}
	}
}

// DrawSprites renders every plane-backed object as a flat rect.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)

		c := cfg.Mover
		switch {
		case entry.HasComponent(components.Player):
			c = cfg.PlayerCol
		case entry.HasComponent(tags.Coin):
			c = cfg.Coin
		}

		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.Width), float32(obj.Height),
			c, false)
	})
}
