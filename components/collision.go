package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEvent reports that Mover's tentative rect overlapped Other, a
// solid, during the physics phase.
type CollisionEvent struct {
	Mover donburi.Entity
	Other donburi.Entity
}

var Collision = events.NewEventType[CollisionEvent]()
