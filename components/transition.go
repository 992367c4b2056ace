package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionData is the room swap fade. Alpha is the overlay opacity.
type TransitionData struct {
	Fade  *gween.Sequence
	Alpha float32
}

// Active reports whether a fade is still running.
func (t *TransitionData) Active() bool {
	return t.Fade != nil
}

var Transition = donburi.NewComponentType[TransitionData]()
