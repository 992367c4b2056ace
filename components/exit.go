package components

import (
	"github.com/automoto/swordcrawl/room"
	"github.com/yohamta/donburi"
)

// ExitData is attached to exit cells.
type ExitData struct {
	Dest room.DestRoom
}

var Exit = donburi.NewComponentType[ExitData]()

// RoomExitData is a single-slot outbox. The first exit taken in a tick wins
// and the scene clears it after performing the swap.
type RoomExitData struct {
	Pending bool
	Dest    room.DestRoom
}

// Request stores dest unless an exit is already pending.
func (r *RoomExitData) Request(dest room.DestRoom) bool {
	if r.Pending {
		return false
	}
	r.Pending = true
	r.Dest = dest
	return true
}

// Take returns the pending exit and empties the slot.
func (r *RoomExitData) Take() (room.DestRoom, bool) {
	if !r.Pending {
		return room.DestRoom{}, false
	}
	dest := r.Dest
	r.Pending = false
	r.Dest = room.DestRoom{}
	return dest, true
}

var RoomExit = donburi.NewComponentType[RoomExitData]()
