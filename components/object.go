package components

import (
	"github.com/automoto/swordcrawl/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BroadPhasePad grows every broad-phase object on each side. resolv maps an
// object to cells through its far edge minus one, so without it a sub-unit
// overlap on the +X or +Y side never becomes a candidate.
const BroadPhasePad = 1.0

// ObjectData links an entity to its broad-phase object. Object.Data holds
// the owning *donburi.Entry.
type ObjectData struct {
	*resolv.Object
}

// BroadPhaseRect is the area the broad-phase object covers for a body rect.
func BroadPhaseRect(r gamemath.Rect) gamemath.Rect {
	return r.Grow(BroadPhasePad)
}

// MoveTo places the broad-phase object over body rect r.
func (o *ObjectData) MoveTo(r gamemath.Rect) {
	if o == nil || o.Object == nil {
		return
	}
	p := BroadPhaseRect(r)
	if o.X == p.Left && o.Y == p.Bottom {
		return
	}
	o.X = p.Left
	o.Y = p.Bottom
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the singleton broad-phase space for the current room.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
