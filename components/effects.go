package components

import "github.com/yohamta/donburi"

// FlashData tints a sprite for a short time after it takes damage.
type FlashData struct {
	Remaining float64 // seconds
	R, G, B   float32 // color multipliers (1,1,1 = untinted)
}

// NewFlash returns an idle flash.
func NewFlash() FlashData {
	return FlashData{R: 1, G: 1, B: 1}
}

var Flash = donburi.NewComponentType[FlashData]()
