package components

import (
	"github.com/automoto/swordcrawl/gamemath"
	"github.com/yohamta/donburi"
)

// BoundsData is the collision rect relative to Position.
type BoundsData struct {
	gamemath.Rect
}

// World returns the bounds translated to the entity position.
func (b *BoundsData) World(p *PositionData) gamemath.Rect {
	return b.At(p.X, p.Y)
}

var Bounds = donburi.NewComponentType[BoundsData]()
