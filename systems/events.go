package systems

import (
	"github.com/automoto/swordcrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SubscribeCollisions registers every collision subscriber on w. Call once
// per world.
func SubscribeCollisions(w donburi.World) {
	components.Collision.Subscribe(w, OnCollisionDamage)
	components.Collision.Subscribe(w, OnCollisionRoomExit)
}

// ProcessEvents dispatches the events queued during this tick. It runs right
// after UpdatePhysics so every subscriber sees the tick's collisions once.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
