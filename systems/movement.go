package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/planar/components"
	"github.com/automoto/planar/plane"
	"github.com/automoto/planar/tags"
)

// UpdateMovement sweeps every physics-driven object through the
// collision plane, zeroes speeds against blockers, tracks grounding, and
// reacts to pass-through contacts (coin pickups).
func UpdateMovement(e *ecs.ECS) {
	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		startX, startY := obj.X, obj.Y
		hit := obj.MoveBy(physics.SpeedX, physics.SpeedY)

		// Blocked axes land short of the full delta.
		if obj.X != startX+physics.SpeedX {
			physics.SpeedX = 0
		}
		physics.OnGround = false
		if obj.Y != startY+physics.SpeedY {
			if physics.SpeedY > 0 {
				physics.OnGround = true
			}
			physics.SpeedY = 0
		}

		if hit == nil {
			return
		}
		for _, contact := range hit.Events {
			handleContact(e, entry, contact)
		}
	})
}

func handleContact(e *ecs.ECS, entry *donburi.Entry, contact plane.Target) {
	if contact.Kind != plane.TargetSprite || contact.Type() != tags.TypeCoin {
		return
	}
	if !entry.HasComponent(components.Player) {
		return
	}

	player := components.Player.Get(entry)
	player.Score++

	removeCoin(e, contact.Sprite)
}

// removeCoin takes the coin off both the collision plane and the world.
func removeCoin(e *ecs.ECS, coin *plane.Sprite) {
	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Sprite != coin {
			return
		}
		if lvl, ok := components.Level.First(e.World); ok {
			components.Level.Get(lvl).Sprites.RemoveSprite(coin)
		}
		e.World.Remove(entry.Entity())
	})
}
