package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/planar/components"
)

// UpdateInput polls the keyboard into each InputData component. Must run
// before UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	components.Input.Each(e.World, func(entry *donburi.Entry) {
		input := components.Input.Get(entry)

		input.Left = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
		input.Right = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
		input.Jump = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyUp)
		input.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyUp)
		input.FullscreenPressed = inpututil.IsKeyJustPressed(ebiten.KeyF)
	})
}
