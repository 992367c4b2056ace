package archetypes

import (
	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Body is anything with a place in the room and a broad-phase object.
	body = []donburi.IComponentType{
		components.Position,
		components.Bounds,
		components.Object,
	}

	Player = newArchetype(append(body,
		tags.Player,
		tags.Solid,
		tags.UserMove,
		components.Physics,
		components.Sprite,
		components.SpriteAnimation,
		components.CharacterMove,
		components.CharacterMeta,
		components.CharacterAnimation,
	)...)
	Enemy = newArchetype(append(body,
		tags.Enemy,
		tags.Solid,
		components.Enemy,
		components.Destroyable,
		components.Flash,
		components.Physics,
		components.Sprite,
		components.SpriteAnimation,
		components.CharacterMeta,
		components.CharacterAnimation,
	)...)
	Wall = newArchetype(append(body,
		tags.Wall,
		tags.Solid,
		components.Sprite,
	)...)
	Stone = newArchetype(append(body,
		tags.Stone,
		tags.Solid,
		components.Sprite,
	)...)
	Bush = newArchetype(append(body,
		tags.Bush,
		tags.Solid,
		components.Destroyable,
		components.Flash,
		components.Sprite,
	)...)
	Exit = newArchetype(append(body,
		tags.Exit,
		tags.Solid,
		components.Exit,
		components.Sprite,
	)...)
	Sword = newArchetype(append(body,
		tags.Sword,
		tags.Sensor,
		components.Physics,
		components.Destroyer,
		components.DelayedRemove,
		components.Sprite,
	)...)
	Particle = newArchetype(
		tags.Particle,
		components.Position,
		components.Velocity,
		components.DelayedRemove,
		components.Sprite,
	)

	// Singletons
	Space = newArchetype(
		components.Space,
	)
	Game = newArchetype(
		components.Clock,
		components.Lifecycle,
		components.RoomExit,
		components.Input,
		components.Dungeon,
		components.Transition,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(all, cs...)...,
	))
	return e
}
