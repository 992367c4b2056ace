package components

import (
	"github.com/automoto/swordcrawl/assets/animations"
	"github.com/yohamta/donburi"
)

var SpriteAnimation = donburi.NewComponentType[animations.SpriteAnimation]()
