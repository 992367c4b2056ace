package components

import (
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// State returns the temporal state of an action.
func (i *InputData) State(action cfg.ActionID) ActionState {
	cur, prev := i.Current[action], i.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Axes returns the movement intent on each axis in [-1, 1], Y pointing up.
func (i *InputData) Axes() (float64, float64) {
	var x, y float64
	if i.Current[cfg.ActionMoveRight] {
		x++
	}
	if i.Current[cfg.ActionMoveLeft] {
		x--
	}
	if i.Current[cfg.ActionMoveUp] {
		y++
	}
	if i.Current[cfg.ActionMoveDown] {
		y--
	}
	return x, y
}

var Input = donburi.NewComponentType[InputData]()
