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

// CreatePlayer creates the user controlled character facing down.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	attachBody(ecs, player, x, y, gamemath.Square(cfg.Player.HalfSize), tags.ResolvMover, tags.ResolvSolid, tags.ResolvPlayer)

	components.CharacterMove.SetValue(player, components.CharacterMoveData{Speed: cfg.Player.Speed})
	components.CharacterMeta.SetValue(player, components.CharacterMetaData{Direction: cfg.Down})

	charAnim, sprite := GenerateCharacterAnimation(cfg.Player.Sprite, cfg.Down)
	components.CharacterAnimation.SetValue(player, charAnim)
	components.SpriteAnimation.SetValue(player, sprite)
	components.Sprite.SetValue(player, components.SpriteData{Name: cfg.Player.Sprite, Frame: sprite.Frame()})

	return player
}
