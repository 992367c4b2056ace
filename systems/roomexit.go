package systems

import (
	"github.com/automoto/swordcrawl/components"
	"github.com/automoto/swordcrawl/logger"
	"github.com/automoto/swordcrawl/tags"
	"github.com/yohamta/donburi"
)

// OnCollisionRoomExit fills the room exit outbox when the player walks into
// an exit. Later exits in the same tick are ignored.
func OnCollisionRoomExit(w donburi.World, ev components.CollisionEvent) {
	if !w.Valid(ev.Mover) || !w.Valid(ev.Other) {
		return
	}
	mover, other := w.Entry(ev.Mover), w.Entry(ev.Other)
	if !mover.HasComponent(tags.Player) || !other.HasComponent(components.Exit) {
		return
	}

	outbox, ok := components.RoomExit.First(w)
	if !ok {
		logger.Log.Warn("room exit without outbox")
		return
	}
	dest := components.Exit.Get(other).Dest
	if components.RoomExit.Get(outbox).Request(dest) {
		logger.Log.WithField("dest", dest).Debug("room exit requested")
	}
}
