package systems

import (
	"math"

	"github.com/automoto/swordcrawl/components"
	"github.com/automoto/swordcrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// waypointReach is how close an enemy must get to a waypoint to drop it.
const waypointReach = 2.0

// UpdateEnemies walks every enemy along an A* path toward the player. Paths
// are recomputed every RepathEvery seconds against the current obstacles.
func UpdateEnemies(ecs *ecs.ECS) {
	w := ecs.World
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	target := components.Position.Get(playerEntry)
	dt := delta(w)

	var grid *NavGrid
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		pos := components.Position.Get(e)

		enemy.SinceRepath += dt
		if enemy.SinceRepath >= enemy.RepathEvery {
			enemy.SinceRepath = 0
			if grid == nil {
				grid = roomNavGrid(w)
			}
			enemy.Path = grid.FindPath(pos.X, pos.Y, target.X, target.Y)
		}

		vx, vy := steer(enemy, pos.X, pos.Y)
		phys := components.Physics.Get(e)
		phys.Velocity.X = vx * enemy.Speed
		phys.Velocity.Y = vy * enemy.Speed

		meta := components.CharacterMeta.Get(e)
		*meta = Facing(*meta, vx, vy)
	})
}

// steer drops reached waypoints and returns the unit direction to the next.
func steer(enemy *components.EnemyData, x, y float64) (float64, float64) {
	for len(enemy.Path) > 0 {
		next := enemy.Path[0]
		dx, dy := next.X-x, next.Y-y
		dist := math.Hypot(dx, dy)
		if dist > waypointReach {
			return dx / dist, dy / dist
		}
		enemy.Path = enemy.Path[1:]
	}
	return 0, 0
}

func roomNavGrid(w donburi.World) *NavGrid {
	entry, ok := components.Dungeon.First(w)
	if !ok || components.Dungeon.Get(entry).Room == nil {
		return NewNavGrid(0, 0)
	}
	r := components.Dungeon.Get(entry).Room
	return CreateNavGrid(w, r.Width, r.Height)
}
