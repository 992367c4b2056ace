package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PhysicsData marks a movable entity. Velocity is in units per second and is
// zeroed after every physics tick.
type PhysicsData struct {
	Velocity math.Vec2
}

var Physics = donburi.NewComponentType[PhysicsData]()

// VelocityData moves an entity without collision, used by particles.
type VelocityData struct {
	math.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()
