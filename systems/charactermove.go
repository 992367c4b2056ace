package systems

import (
	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/systems/factory"
	"github.com/automoto/swordcrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var userMovers = donburi.NewQuery(filter.Contains(
	tags.UserMove,
	components.Physics,
	components.CharacterMove,
	components.CharacterMeta,
))

// Facing derives the next facing state from signed movement intent.
// Horizontal intent wins over vertical; no intent keeps the facing and
// marks the character idle.
func Facing(meta components.CharacterMetaData, ix, iy float64) components.CharacterMetaData {
	switch {
	case ix > 0:
		return components.CharacterMetaData{Direction: cfg.Right, Moving: true}
	case ix < 0:
		return components.CharacterMetaData{Direction: cfg.Left, Moving: true}
	case iy > 0:
		return components.CharacterMetaData{Direction: cfg.Up, Moving: true}
	case iy < 0:
		return components.CharacterMetaData{Direction: cfg.Down, Moving: true}
	default:
		return components.CharacterMetaData{Direction: meta.Direction, Moving: false}
	}
}

// UpdateCharacterMove turns input into velocity and facing for user
// controlled characters and starts sword swings on the attack press edge.
func UpdateCharacterMove(ecs *ecs.ECS) {
	in := input(ecs.World)
	if in == nil {
		return
	}
	ix, iy := in.Axes()
	attack := in.State(cfg.ActionAttack).JustPressed

	userMovers.Each(ecs.World, func(e *donburi.Entry) {
		speed := components.CharacterMove.Get(e).Speed
		phys := components.Physics.Get(e)
		phys.Velocity.X = ix * speed
		phys.Velocity.Y = iy * speed

		meta := components.CharacterMeta.Get(e)
		*meta = Facing(*meta, ix, iy)

		if attack {
			queueSwing(ecs.World, e, meta.Direction)
		}
	})
}

func queueSwing(w donburi.World, e *donburi.Entry, facing cfg.Direction) {
	l := lifecycle(w)
	if l == nil || !e.HasComponent(components.Position) || !e.HasComponent(components.Bounds) {
		return
	}
	pos := components.Position.Get(e)
	x, y := factory.SwordOrigin(pos.X, pos.Y, components.Bounds.Get(e).Rect, facing)
	l.QueueSpawn(func(ecs *ecs.ECS) {
		factory.CreateSword(ecs, x, y)
	})
}
