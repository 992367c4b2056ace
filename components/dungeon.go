package components

import (
	"github.com/automoto/swordcrawl/room"
	"github.com/yohamta/donburi"
)

// DungeonData is the singleton describing where in the dungeon the current
// world is.
type DungeonData struct {
	Seed    int64
	Current room.Coordinate
	Room    *room.Room
	Rooms   int
}

var Dungeon = donburi.NewComponentType[DungeonData]()
