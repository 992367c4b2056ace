package components

import "github.com/yohamta/donburi"

// PositionData is the entity origin in world units, Y pointing up. Depth
// orders drawing: entities further south draw on top.
type PositionData struct {
	X, Y  float64
	Depth float64
}

var Position = donburi.NewComponentType[PositionData]()
