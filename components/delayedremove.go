package components

import "github.com/yohamta/donburi"

// DelayedRemoveData removes the entity once Elapsed exceeds End seconds.
type DelayedRemoveData struct {
	Elapsed float64
	End     float64
}

// NewDelayedRemove starts a countdown of end seconds.
func NewDelayedRemove(end float64) DelayedRemoveData {
	return DelayedRemoveData{End: end}
}

var DelayedRemove = donburi.NewComponentType[DelayedRemoveData]()
