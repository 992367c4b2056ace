package factory

import (
	"github.com/automoto/swordcrawl/archetypes"
	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/gamemath"
	"github.com/automoto/swordcrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy creates a chasing enemy. It blocks movement like any solid
// and can be broken by the sword.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	attachBody(ecs, enemy, x, y, gamemath.Square(cfg.Enemy.HalfSize), tags.ResolvMover, tags.ResolvSolid, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed:       cfg.Enemy.Speed,
		RepathEvery: cfg.Enemy.RepathEvery,
		// Search on the first tick
		SinceRepath: cfg.Enemy.RepathEvery,
	})
	components.Destroyable.SetValue(enemy, components.DestroyableData{Health: cfg.Enemy.Health})
	components.Flash.SetValue(enemy, components.NewFlash())
	components.CharacterMeta.SetValue(enemy, components.CharacterMetaData{Direction: cfg.Down})

	charAnim, sprite := GenerateCharacterAnimation(cfg.Enemy.Sprite, cfg.Down)
	components.CharacterAnimation.SetValue(enemy, charAnim)
	components.SpriteAnimation.SetValue(enemy, sprite)
	components.Sprite.SetValue(enemy, components.SpriteData{Name: cfg.Enemy.Sprite, Frame: sprite.Frame()})

	return enemy
}
