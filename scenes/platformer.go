package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/planar/assets"
	"github.com/automoto/planar/components"
	cfg "github.com/automoto/planar/config"
	"github.com/automoto/planar/leveldata"
	"github.com/automoto/planar/systems"
	"github.com/automoto/planar/systems/factory"
)

// PlatformerScene is the demo: a tile level with one-way platforms, a
// floating solid platform, coins, and a player swept through the
// collision plane every tick.
type PlatformerScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewPlatformerScene() *PlatformerScene {
	return &PlatformerScene{}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())

	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdatePlayer)
	world.AddSystem(systems.UpdatePhysics)
	world.AddSystem(systems.UpdateTweens)
	world.AddSystem(systems.UpdateMovement)
	world.AddSystem(systems.UpdateSettings)

	world.AddRenderer(cfg.Default, systems.DrawLevel)
	world.AddRenderer(cfg.Default, systems.DrawSprites)
	world.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = world

	level, err := leveldata.Load(assets.FS, cfg.C.LevelPath)
	if err != nil {
		log.Fatalf("Failed to load level %s: %v", cfg.C.LevelPath, err)
	}

	levelEntry := factory.CreateLevel(ps.ecs, level)
	sprites := components.Level.Get(levelEntry).Sprites

	if len(level.SpawnPoints) == 0 {
		log.Fatalf("No spawn points defined in %s", cfg.C.LevelPath)
	}
	spawn := level.SpawnPoints[0]
	factory.CreatePlayer(ps.ecs, sprites, spawn.X, spawn.Y)

	factory.CreateFloatingPlatform(ps.ecs, sprites, 280, 288, 48, 8, 96)

	// Coins over the platforms and floor.
	for _, pos := range [][2]float64{
		{120, 272}, {152, 272}, {280, 208}, {296, 208}, {440, 272}, {600, 320},
	} {
		factory.CreateCoin(ps.ecs, sprites, pos[0], pos[1])
	}

	saved := systems.LoadSettings()
	if saved != nil {
		factory.CreateSettings(ps.ecs, &components.SettingsData{
			Fullscreen: saved.Fullscreen,
			HighScore:  saved.HighScore,
		})
		ebiten.SetFullscreen(saved.Fullscreen)
	} else {
		factory.CreateSettings(ps.ecs, nil)
	}
}
