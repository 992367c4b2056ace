package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type EnemyData struct {
	Speed       float64
	RepathEvery float64 // seconds between path searches
	SinceRepath float64

	// Waypoints in world units, next one first.
	Path []math.Vec2
}

var Enemy = donburi.NewComponentType[EnemyData]()
