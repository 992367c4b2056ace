package components

import (
	"github.com/automoto/swordcrawl/config"
	"github.com/yohamta/donburi"
)

// CharacterMetaData is the facing and movement state of a character.
type CharacterMetaData struct {
	Direction config.Direction
	Moving    bool
}

// CharacterAnimationData remembers the last applied meta and the walk clip
// for each facing.
type CharacterAnimationData struct {
	Prev CharacterMetaData
	Walk [config.DirectionCount][]int
}

// CharacterMoveData is the walking speed in units per second.
type CharacterMoveData struct {
	Speed float64
}

var CharacterMeta = donburi.NewComponentType[CharacterMetaData]()
var CharacterAnimation = donburi.NewComponentType[CharacterAnimationData]()
var CharacterMove = donburi.NewComponentType[CharacterMoveData]()
