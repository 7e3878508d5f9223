package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 needs a loaded face; basicfont is enough here
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"

	"github.com/automoto/planar/components"
	cfg "github.com/automoto/planar/config"
)

const hudMargin = 8

// DrawHUD renders the score and high score in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	line := fmt.Sprintf("COINS %d", player.Score)
	if settingsEntry, ok := components.Settings.First(e.World); ok {
		settings := components.Settings.Get(settingsEntry)
		if settings.HighScore > 0 {
			line = fmt.Sprintf("COINS %d   BEST %d", player.Score, settings.HighScore)
		}
	}

	text.Draw(screen, line, basicfont.Face7x13, hudMargin, hudMargin+basicfont.Face7x13.Ascent, cfg.White)
}
