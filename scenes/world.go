package scenes

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/dungeon"
	"github.com/automoto/swordcrawl/logger"
	"github.com/automoto/swordcrawl/room"
	"github.com/automoto/swordcrawl/systems"
	"github.com/automoto/swordcrawl/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DungeonScene owns the generated dungeon and one ECS world for the room the
// player is in. Taking an exit rebuilds the world for the destination room.
type DungeonScene struct {
	ecs     *ecs.ECS
	seed    int64
	rooms   *dungeon.Map[*room.Room]
	current room.Coordinate
}

// NewDungeonScene generates the dungeon for seed and enters the origin room.
func NewDungeonScene(gen dungeon.Generator, seed int64) (*DungeonScene, error) {
	rooms, err := gen.Generate(rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	ds := &DungeonScene{seed: seed, rooms: rooms}
	if err := ds.enter(room.Coordinate{}, factory.SpawnCell{}, nil); err != nil {
		return nil, err
	}
	logger.Log.WithFields(logrus.Fields{
		"seed":  seed,
		"rooms": rooms.Len(),
	}).Info("dungeon generated")
	return ds, nil
}

// ECS exposes the current room's world.
func (ds *DungeonScene) ECS() *ecs.ECS {
	return ds.ecs
}

// Current returns the coordinate of the room being played.
func (ds *DungeonScene) Current() room.Coordinate {
	return ds.current
}

// Rooms returns the generated dungeon.
func (ds *DungeonScene) Rooms() *dungeon.Map[*room.Room] {
	return ds.rooms
}

// Update advances one fixed tick.
func (ds *DungeonScene) Update() {
	ds.Step(1 / float64(cfg.C.TPS))
}

// Step runs every system once for dt seconds, then performs a pending room
// swap.
func (ds *DungeonScene) Step(dt float64) {
	if entry, ok := components.Clock.First(ds.ecs.World); ok {
		clock := components.Clock.Get(entry)
		clock.Delta = dt
		clock.Elapsed += dt
		clock.Tick++
	}

	ds.ecs.Update()
	ds.takeExit()
}

// takeExit swaps to the room the pending exit leads to, if any.
func (ds *DungeonScene) takeExit() {
	entry, ok := components.RoomExit.First(ds.ecs.World)
	if !ok {
		return
	}
	dest, ok := components.RoomExit.Get(entry).Take()
	if !ok {
		return
	}
	target := dest.Resolve(ds.current)
	x, y := dest.SpawnPoint()
	if err := ds.enter(target, factory.SpawnCell{X: x, Y: y, Set: true}, input(ds.ecs.World)); err != nil {
		logger.Log.WithError(err).WithField("dest", target).Warn("room exit ignored")
	}
}

func (ds *DungeonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

// enter builds a fresh world for the room at c. carry keeps the held keys so
// a press that started in the old room is not seen as a new press.
func (ds *DungeonScene) enter(c room.Coordinate, spawn factory.SpawnCell, carry *components.InputData) error {
	r, ok := ds.rooms.Get(c)
	if !ok {
		return fmt.Errorf("no room at %v", c)
	}

	e := ecs.NewECS(donburi.NewWorld())
	systems.SubscribeCollisions(e.World)

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebugToggle)
	e.AddSystem(systems.UpdateCharacterMove)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.ProcessEvents)
	e.AddSystem(systems.UpdateCharacterAnimation)
	e.AddSystem(systems.UpdateSpriteAnimation)
	e.AddSystem(systems.UpdateDelayedRemove)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateTransition)
	// Must be last
	e.AddSystem(systems.FlushLifecycle)

	e.AddRenderer(cfg.Default, systems.DrawRoom)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawTransition)

	factory.CreateSpace(e,
		int(float64(r.Width)*cfg.C.TileSize),
		int(float64(r.Height)*cfg.C.TileSize),
		cfg.Physics.SpaceCellSize, cfg.Physics.SpaceCellSize,
	)
	game := factory.CreateGame(e, components.DungeonData{
		Seed:    ds.seed,
		Current: c,
		Room:    r,
		Rooms:   ds.rooms.Len(),
	})
	if carry != nil {
		components.Input.SetValue(game, *carry)
	}

	player := factory.PopulateRoom(e, r, spawn, rand.New(rand.NewSource(roomSeed(ds.seed, c))))
	if player == nil {
		logger.Log.WithField("room", c).Warn("room has no player spawn")
	}

	if ds.ecs != nil {
		systems.StartTransition(e.World)
	}
	ds.ecs = e
	ds.current = c
	logger.Log.WithField("room", c).Debug("entered room")
	return nil
}

// roomSeed derives a stable per-room seed so revisiting a room places the
// same enemies.
func roomSeed(seed int64, c room.Coordinate) int64 {
	return seed*1_000_003 + int64(c.X)*7_919 + int64(c.Y)*104_729
}

func input(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
