package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/planar/archetypes"
	"github.com/automoto/planar/components"
	cfg "github.com/automoto/planar/config"
	"github.com/automoto/planar/leveldata"
	"github.com/automoto/planar/plane"
	"github.com/automoto/planar/tags"
)

func CreateLevel(e *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	sprites := plane.NewSpritePlane()
	sprites.SetMinSpriteSize(cfg.Collision.MinSpriteSize)
	sprites.LinkTilePlane(level.Tiles)

	entry := archetypes.Level.Spawn(e)
	components.Level.SetValue(entry, components.LevelData{
		Level:   level,
		Sprites: sprites,
	})
	return entry
}

func CreatePlayer(e *ecs.ECS, sprites *plane.SpritePlane, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	sprite := sprites.AddSprite(&plane.Sprite{
		X: x, Y: y,
		Width: cfg.Player.Width, Height: cfg.Player.Height,
		Collisions: true,
		Type:       tags.TypePlayer,
	})
	components.Object.SetValue(player, components.ObjectData{Sprite: sprite})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	return player
}

func CreateCoin(e *ecs.ECS, sprites *plane.SpritePlane, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(e)

	sprite := sprites.AddSprite(&plane.Sprite{
		X: x, Y: y,
		Width: 8, Height: 8,
		Collisions: true,
		Type:       tags.TypeCoin,
	})
	components.Object.SetValue(coin, components.ObjectData{Sprite: sprite})
	return coin
}

// CreateFloatingPlatform spawns a solid platform that drifts up and back
// down on a gween sequence.
func CreateFloatingPlatform(e *ecs.ECS, sprites *plane.SpritePlane, x, y, w, h, travel float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(e)

	sprite := sprites.AddSprite(&plane.Sprite{
		X: x, Y: y,
		Width: w, Height: h,
		Collisions: true,
		Solid:      true,
		Type:       tags.TypePlatform,
	})
	components.Object.SetValue(platform, components.ObjectData{Sprite: sprite})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-travel), 2, ease.InOutQuad),
		gween.New(float32(y-travel), float32(y), 2, ease.InOutQuad),
	)
	components.Tween.Set(platform, tw)

	return platform
}

func CreateSettings(e *ecs.ECS, saved *components.SettingsData) *donburi.Entry {
	entry := archetypes.Settings.Spawn(e)
	if saved != nil {
		components.Settings.SetValue(entry, *saved)
	}
	return entry
}
