package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/planar/components"
	cfg "github.com/automoto/planar/config"
	"github.com/automoto/planar/tags"
)

// UpdatePlayer turns input into horizontal acceleration and jumps.
func UpdatePlayer(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)
		input := components.Input.Get(entry)

		if input.Left {
			physics.SpeedX -= cfg.Player.Acceleration
			player.Direction = cfg.DirectionLeft
		}
		if input.Right {
			physics.SpeedX += cfg.Player.Acceleration
			player.Direction = cfg.DirectionRight
		}

		if input.JumpPressed && physics.OnGround {
			physics.SpeedY = -cfg.Player.JumpSpeed
			physics.OnGround = false
		}
	})
}
