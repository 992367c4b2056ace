package config

import "fmt"

// WalkAnimationName is the atlas key for a character's walk clip,
// e.g. "hero_walk_left".
func WalkAnimationName(character string, d Direction) string {
	return fmt.Sprintf("%s_walk_%s", character, d)
}

// FallbackClip is used when an animation name is missing from the atlas.
var FallbackClip = []int{0}

// Static image names for room content.
const (
	ImageWall     = "wall"
	ImageStone    = "stone"
	ImageBush     = "bush"
	ImageExit     = "exit"
	ImageSword    = "sword"
	ImageParticle = "particle"
)
