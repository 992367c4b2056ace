package systems

import (
	"github.com/automoto/swordcrawl/components"
	"github.com/yohamta/donburi"
)

// delta returns the seconds covered by the current tick.
func delta(w donburi.World) float64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

// lifecycle returns the deferred removal and spawn queues, nil before the
// game singleton exists.
func lifecycle(w donburi.World) *components.LifecycleData {
	entry, ok := components.Lifecycle.First(w)
	if !ok {
		return nil
	}
	return components.Lifecycle.Get(entry)
}

// input returns the polled input state, nil before the game singleton exists.
func input(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

// queueRemove schedules entity for removal at the end of the tick.
func queueRemove(w donburi.World, entity donburi.Entity) {
	if l := lifecycle(w); l != nil {
		l.QueueRemove(entity)
	}
}
