package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/planar/components"
)

// UpdateSettings handles the fullscreen toggle and persists the high
// score when the player beats it.
func UpdateSettings(e *ecs.ECS) {
	settingsEntry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(settingsEntry)

	dirty := false

	if playerEntry, ok := components.Player.First(e.World); ok {
		input := components.Input.Get(playerEntry)
		if input.FullscreenPressed {
			settings.Fullscreen = !settings.Fullscreen
			ebiten.SetFullscreen(settings.Fullscreen)
			dirty = true
		}

		player := components.Player.Get(playerEntry)
		if player.Score > settings.HighScore {
			settings.HighScore = player.Score
			dirty = true
		}
	}

	if dirty {
		SaveSettings(settings)
	}
}
