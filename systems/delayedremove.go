package systems

import (
	"github.com/automoto/swordcrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDelayedRemove advances every countdown and queues the entity for
// removal once its elapsed time is strictly past the end.
func UpdateDelayedRemove(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	components.DelayedRemove.Each(ecs.World, func(e *donburi.Entry) {
		dr := components.DelayedRemove.Get(e)
		dr.Elapsed += dt
		if dr.Elapsed > dr.End {
			queueRemove(ecs.World, e.Entity())
		}
	})
}
