package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Wall     = donburi.NewTag().SetName("Wall")
	Stone    = donburi.NewTag().SetName("Stone")
	Bush     = donburi.NewTag().SetName("Bush")
	Exit     = donburi.NewTag().SetName("Exit")
	Sword    = donburi.NewTag().SetName("Sword")
	Particle = donburi.NewTag().SetName("Particle")

	// Solid entities block movers and are reported in collision events.
	Solid = donburi.NewTag().SetName("Solid")
	// Sensor movers report overlaps but are never pushed back.
	Sensor = donburi.NewTag().SetName("Sensor")
	// UserMove characters take their velocity from input.
	UserMove = donburi.NewTag().SetName("UserMove")
)

// Resolv tags for the broad phase
const (
	ResolvSolid  = "solid"
	ResolvMover  = "mover"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvExit   = "exit"
)
