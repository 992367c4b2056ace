package systems

import (
	"github.com/automoto/swordcrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var drifting = donburi.NewQuery(filter.Contains(components.Position, components.Velocity))

// UpdateEffects moves particles and counts down damage flashes.
func UpdateEffects(ecs *ecs.ECS) {
	dt := delta(ecs.World)

	drifting.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		pos.Depth = -pos.Y
	})

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining <= 0 {
			return
		}
		flash.Remaining -= dt
		if flash.Remaining <= 0 {
			*flash = components.NewFlash()
		}
	})
}
