package factory

import (
	"github.com/automoto/swordcrawl/assets"
	"github.com/automoto/swordcrawl/assets/animations"
	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/logger"
)

// atlas is shared by every factory. A nil atlas makes every lookup fall back.
var atlas *assets.Atlas

// UseAtlas sets the sprite atlas used by later Create calls.
func UseAtlas(a *assets.Atlas) {
	atlas = a
}

// Atlas returns the atlas in use, possibly nil.
func Atlas() *assets.Atlas {
	return atlas
}

func animationKeys(name string) []int {
	if atlas == nil {
		logger.Log.WithField("animation", name).Debug("no atlas loaded, using fallback")
		return cfg.FallbackClip
	}
	return atlas.Animation(name)
}

func imageIndex(name string) int {
	if atlas == nil {
		return 0
	}
	return atlas.Image(name)
}

// GenerateCharacterAnimation collects the four walk clips of a character.
// The returned animation starts paused on the facing clip.
func GenerateCharacterAnimation(character string, facing cfg.Direction) (components.CharacterAnimationData, animations.SpriteAnimation) {
	var charAnim components.CharacterAnimationData
	for _, d := range cfg.Directions {
		charAnim.Walk[d] = animationKeys(cfg.WalkAnimationName(character, d))
	}
	charAnim.Prev = components.CharacterMetaData{Direction: facing}

	sprite := animations.NewSpriteAnimation(charAnim.Walk[facing], cfg.Animation.FrameTime)
	sprite.Pause = true
	return charAnim, sprite
}
