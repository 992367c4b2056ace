package components

import "github.com/yohamta/donburi"

// DestroyerData damages any destroyable it collides with.
type DestroyerData struct {
	Damage float64
}

// DestroyableData is removed once Health drops below zero.
type DestroyableData struct {
	Health float64
}

var Destroyer = donburi.NewComponentType[DestroyerData]()
var Destroyable = donburi.NewComponentType[DestroyableData]()
