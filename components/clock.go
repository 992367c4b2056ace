package components

import "github.com/yohamta/donburi"

// ClockData is the singleton tick clock. Delta is the seconds covered by the
// current tick.
type ClockData struct {
	Delta   float64
	Elapsed float64
	Tick    uint64
}

var Clock = donburi.NewComponentType[ClockData]()
