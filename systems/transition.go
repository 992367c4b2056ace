package systems

import (
	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func transition(w donburi.World) *components.TransitionData {
	entry, ok := components.Transition.First(w)
	if !ok {
		return nil
	}
	return components.Transition.Get(entry)
}

// StartTransition begins the fade in of a freshly entered room. The overlay
// starts opaque and clears over the configured duration.
func StartTransition(w donburi.World) {
	t := transition(w)
	if t == nil {
		return
	}
	seq := gween.NewSequence()
	seq.Add(gween.New(1, 0, cfg.Transition.Duration, ease.OutQuad))
	t.Fade = seq
	t.Alpha = 1
}

// UpdateTransition advances the fade.
func UpdateTransition(ecs *ecs.ECS) {
	t := transition(ecs.World)
	if t == nil || !t.Active() {
		return
	}
	alpha, _, done := t.Fade.Update(float32(delta(ecs.World)))
	t.Alpha = alpha
	if done {
		t.Fade = nil
		t.Alpha = 0
	}
}
