package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/automoto/planar/config"
	"github.com/automoto/planar/scenes"
	"github.com/automoto/planar/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewPlatformerScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	if err := cfg.Load("planar.yaml"); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Best effort; the demo runs without saved settings.
	_ = systems.InitPersistence()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
