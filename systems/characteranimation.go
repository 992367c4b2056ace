package systems

import (
	"github.com/automoto/swordcrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var animatedCharacters = donburi.NewQuery(filter.Contains(
	components.CharacterMeta,
	components.CharacterAnimation,
	components.SpriteAnimation,
))

// UpdateCharacterAnimation swaps the walk clip when the facing or moving
// state changed since the last tick. An unchanged state leaves playback
// alone.
func UpdateCharacterAnimation(ecs *ecs.ECS) {
	animatedCharacters.Each(ecs.World, func(e *donburi.Entry) {
		meta := components.CharacterMeta.Get(e)
		anim := components.CharacterAnimation.Get(e)
		if anim.Prev == *meta {
			return
		}
		sprite := components.SpriteAnimation.Get(e)
		sprite.Swap(anim.Walk[meta.Direction])
		sprite.Pause = !meta.Moving
		anim.Prev = *meta
	})
}
