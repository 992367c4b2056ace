package factory

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/room"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// enemyPlacementAttempts bounds the search for a free enemy cell.
const enemyPlacementAttempts = 32

// enemySpawnClearance keeps enemies this many cells away from the player.
const enemySpawnClearance = 3

// CellCenter converts a room cell to the world position of its center.
func CellCenter(x, y int) (float64, float64) {
	tile := cfg.C.TileSize
	return float64(x)*tile + tile/2, float64(y)*tile + tile/2
}

// WorldCell converts a world position to the room cell containing it.
func WorldCell(x, y float64) (int, int) {
	tile := cfg.C.TileSize
	return int(math.Floor(x / tile)), int(math.Floor(y / tile))
}

// SpawnCell is where the player enters a room: a fixed cell when arriving
// through an exit, otherwise the room's PlayerSpawn cell.
type SpawnCell struct {
	X, Y int
	Set  bool
}

// PopulateRoom creates one entity per non-empty cell and places the player.
// Enemies are scattered on empty interior cells using rng.
func PopulateRoom(ecs *ecs.ECS, r *room.Room, spawn SpawnCell, rng *rand.Rand) *donburi.Entry {
	var player *donburi.Entry
	playerX, playerY := -1, -1

	for f := range r.Fields() {
		x, y := CellCenter(f.X, f.Y)
		switch f.Cell.Kind {
		case room.Wall:
			CreateWall(ecs, x, y)
		case room.Stone:
			CreateStone(ecs, x, y)
		case room.Bush:
			CreateBush(ecs, x, y)
		case room.Exit:
			CreateExit(ecs, x, y, f.Cell.Dest)
		case room.PlayerSpawn:
			if !spawn.Set {
				player = CreatePlayer(ecs, x, y)
				playerX, playerY = f.X, f.Y
			}
		}
	}

	if spawn.Set {
		x, y := CellCenter(spawn.X, spawn.Y)
		player = CreatePlayer(ecs, x, y)
		playerX, playerY = spawn.X, spawn.Y
	}

	placeEnemies(ecs, r, playerX, playerY, rng)
	return player
}

func placeEnemies(ecs *ecs.ECS, r *room.Room, playerX, playerY int, rng *rand.Rand) {
	if r.Width < 3 || r.Height < 3 {
		return
	}
	taken := make(map[room.Coordinate]bool)
	placed := 0
	for attempt := 0; attempt < enemyPlacementAttempts && placed < cfg.Enemy.PerRoom; attempt++ {
		x := 1 + rng.Intn(r.Width-2)
		y := 1 + rng.Intn(r.Height-2)
		c := room.Coordinate{X: x, Y: y}
		cell, _ := r.At(x, y)
		if cell.Kind != room.Empty || taken[c] {
			continue
		}
		if abs(x-playerX) < enemySpawnClearance && abs(y-playerY) < enemySpawnClearance {
			continue
		}
		taken[c] = true
		wx, wy := CellCenter(x, y)
		CreateEnemy(ecs, wx, wy)
		placed++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
