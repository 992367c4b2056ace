package systems

import (
	"github.com/automoto/swordcrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpriteAnimation advances every animation and copies the current
// frame onto the sprite.
func UpdateSpriteAnimation(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	components.SpriteAnimation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.SpriteAnimation.Get(e)
		anim.Update(dt)
		if e.HasComponent(components.Sprite) {
			components.Sprite.Get(e).Frame = anim.Frame()
		}
	})
}
