package main

import (
	"flag"
	"os"

	"github.com/automoto/swordcrawl/assets"
	"github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/dungeon"
	"github.com/automoto/swordcrawl/logger"
	"github.com/automoto/swordcrawl/scenes"
	"github.com/automoto/swordcrawl/systems"
	"github.com/automoto/swordcrawl/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", 0, "Dungeon seed (0 = last used)")
	corridor := flag.Int("corridor", config.Dungeon.CorridorLength, "Number of corridor steps")
	scale := flag.Int("scale", -1, "Window scale index (-1 = last used)")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	logger.Init(os.Stderr)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Log.WithError(err).Warn("settings will not be saved")
	}
	saved := systems.LoadSettings()
	if *seed != 0 {
		saved.Seed = *seed
	}
	if *scale >= 0 {
		saved.ScaleIndex = *scale
	}
	if *debug {
		saved.DebugOverlay = true
	}
	config.Debug.Overlay = saved.DebugOverlay
	if err := systems.SaveSettings(saved); err != nil {
		logger.Log.WithError(err).Warn("could not persist settings")
	}

	factory.UseAtlas(assets.MustLoadAtlas())

	gen := dungeon.Generator{
		CorridorLength: *corridor,
		Splits:         config.Dungeon.Splits,
		RoomWidth:      config.Room.Width,
		RoomHeight:     config.Room.Height,
	}
	scene, err := scenes.NewDungeonScene(gen, saved.Seed)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not start")
	}

	s := saved.Scale()
	ebiten.SetWindowSize(int(float64(config.C.Width)*s), int(float64(config.C.Height)*s))
	ebiten.SetWindowTitle("swordcrawl")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
