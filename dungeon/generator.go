// Package dungeon lays out a connected graph of rooms and materializes each
// one with the room generator.
package dungeon

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/automoto/swordcrawl/room"
)

// maxDirectionAttempts bounds the search for a free neighbour per step.
const maxDirectionAttempts = 8

// ErrInvalidCorridor is returned for a negative corridor length.
var ErrInvalidCorridor = errors.New("invalid corridor length")

// Direction is a cardinal step between rooms.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directions = [...]Direction{North, South, East, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "west"
	}
}

// Delta is the coordinate change when moving one room in d.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Open sets the exit flag for d on g.
func (d Direction) Open(g *room.Generation) {
	switch d {
	case North:
		g.North = true
	case South:
		g.South = true
	case East:
		g.East = true
	case West:
		g.West = true
	}
}

// IsOpen reports whether g has an exit toward d.
func (d Direction) IsOpen(g *room.Generation) bool {
	switch d {
	case North:
		return g.North
	case South:
		return g.South
	case East:
		return g.East
	default:
		return g.West
	}
}

// Generator walks a chain of rooms outward from the origin.
type Generator struct {
	// CorridorLength is the number of link attempts.
	CorridorLength int
	// Splits is accepted for branching layouts but the walk does not read it.
	// TODO(splits): branch off earlier rooms of the chain Splits times.
	Splits int

	RoomWidth  int
	RoomHeight int
}

func (g *Generator) validate() error {
	if g.CorridorLength < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCorridor, g.CorridorLength)
	}
	probe := room.Generation{Width: g.RoomWidth, Height: g.RoomHeight}
	return probe.Validate()
}

// Layout runs the graph walk and returns the room descriptors. Every link
// opens the exit on both rooms.
func (g *Generator) Layout(rng *rand.Rand) (*Map[*room.Generation], error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	layout := NewMap[*room.Generation]()
	current := Coordinate{}
	layout.Insert(current, g.descriptor())

	for step := 0; step < g.CorridorLength; step++ {
		dir, ok := g.freeDirection(rng, layout, current)
		if !ok {
			continue
		}

		from, _ := layout.Get(current)
		dir.Open(from)

		current = current.Add(dir.Delta())
		next := g.descriptor()
		dir.Opposite().Open(next)
		layout.Insert(current, next)
	}

	return layout, nil
}

// Generate lays out the dungeon and generates every room in coordinate order.
func (g *Generator) Generate(rng *rand.Rand) (*Map[*room.Room], error) {
	layout, err := g.Layout(rng)
	if err != nil {
		return nil, err
	}

	rooms := NewMap[*room.Room]()
	for c, desc := range layout.All() {
		r, err := desc.Generate(rng)
		if err != nil {
			return nil, fmt.Errorf("generate room %v: %w", c, err)
		}
		rooms.Insert(c, r)
	}
	return rooms, nil
}

func (g *Generator) descriptor() *room.Generation {
	return &room.Generation{Width: g.RoomWidth, Height: g.RoomHeight}
}

func (g *Generator) freeDirection(rng *rand.Rand, layout *Map[*room.Generation], current Coordinate) (Direction, bool) {
	for attempt := 0; attempt < maxDirectionAttempts; attempt++ {
		dir := directions[rng.Intn(len(directions))]
		if !layout.Has(current.Add(dir.Delta())) {
			return dir, true
		}
	}
	return North, false
}

// Link is a pair of rooms joined by reciprocal exits.
type Link struct {
	From, To  Coordinate
	Direction Direction
}

// Links lists every open exit in a layout whose neighbour exists, in
// coordinate order.
func Links(layout *Map[*room.Generation]) []Link {
	var links []Link
	for c, desc := range layout.All() {
		for _, dir := range directions {
			if !dir.IsOpen(desc) {
				continue
			}
			to := c.Add(dir.Delta())
			if layout.Has(to) {
				links = append(links, Link{From: c, To: to, Direction: dir})
			}
		}
	}
	return links
}
