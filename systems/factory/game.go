package factory

import (
	"github.com/automoto/swordcrawl/archetypes"
	"github.com/automoto/swordcrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame creates the singleton holding the clock, the deferred
// lifecycle queues, the room exit outbox and input.
func CreateGame(ecs *ecs.ECS, dungeon components.DungeonData) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Dungeon.SetValue(game, dungeon)
	return game
}
