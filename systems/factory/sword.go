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

// SwordOrigin returns where a swing lands for a character at (x, y) with the
// given collision rect: on the edge of the rect in the facing direction.
func SwordOrigin(x, y float64, rect gamemath.Rect, facing cfg.Direction) (float64, float64) {
	switch facing {
	case cfg.Up:
		return x, y + rect.Top
	case cfg.Down:
		return x, y + rect.Bottom
	case cfg.Left:
		return x + rect.Left, y
	default:
		return x + rect.Right, y
	}
}

// CreateSword creates a short lived hitbox. It never moves and is never
// pushed back, it only reports what it overlaps.
func CreateSword(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	sword := archetypes.Sword.Spawn(ecs)

	attachBody(ecs, sword, x, y, gamemath.Square(cfg.Combat.SwordHalfSize), tags.ResolvMover)

	components.Destroyer.SetValue(sword, components.DestroyerData{Damage: cfg.Combat.SwordDamage})
	components.DelayedRemove.SetValue(sword, components.NewDelayedRemove(cfg.Combat.SwordDuration))
	components.Sprite.SetValue(sword, components.SpriteData{Name: cfg.ImageSword, Frame: imageIndex(cfg.ImageSword)})

	return sword
}
