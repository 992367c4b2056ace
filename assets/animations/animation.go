package animations

// SpriteAnimation cycles through atlas frame indices. Speed is the time in
// seconds a single frame stays on screen.
type SpriteAnimation struct {
	Keys  []int
	Index int
	Speed float64
	Time  float64
	Pause bool
}

func NewSpriteAnimation(keys []int, speed float64) SpriteAnimation {
	return SpriteAnimation{
		Keys:  keys,
		Speed: speed,
	}
}

// Update advances the animation by dt seconds. Large steps skip frames.
func (a *SpriteAnimation) Update(dt float64) {
	if a.Pause || len(a.Keys) == 0 || a.Speed <= 0 {
		return
	}
	a.Time += dt
	for a.Time > a.Speed {
		a.Index = (a.Index + 1) % len(a.Keys)
		a.Time -= a.Speed
	}
}

// Frame returns the atlas index of the current frame.
func (a *SpriteAnimation) Frame() int {
	if len(a.Keys) == 0 {
		return 0
	}
	return a.Keys[a.Index%len(a.Keys)]
}

// Swap replaces the clip and restarts it from the first frame.
func (a *SpriteAnimation) Swap(keys []int) {
	a.Keys = keys
	a.Index = 0
	a.Time = 0
}
