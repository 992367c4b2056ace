// Package room holds the tile grid of a single dungeon room and the
// generator that fills it.
package room

import "iter"

// Kind is the content of a single room cell.
type Kind uint8

const (
	Empty Kind = iota
	Wall
	Stone
	Bush
	PlayerSpawn
	Exit
)

func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Stone:
		return "stone"
	case Bush:
		return "bush"
	case PlayerSpawn:
		return "player"
	case Exit:
		return "exit"
	default:
		return "empty"
	}
}

// Coordinate addresses a room in the dungeon graph. North is Y-1.
type Coordinate struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// DestRoom is where an exit leads: either an offset from the room it is
// traversed from, or an absolute room coordinate. Both carry the cell the
// player appears on in the destination room.
type DestRoom struct {
	Absolute bool
	X, Y     int
	SpawnX   int
	SpawnY   int
}

// Relative builds a destination relative to the current room.
func Relative(dx, dy, spawnX, spawnY int) DestRoom {
	return DestRoom{X: dx, Y: dy, SpawnX: spawnX, SpawnY: spawnY}
}

// AbsoluteTo builds a destination pinned to a room coordinate.
func AbsoluteTo(x, y, spawnX, spawnY int) DestRoom {
	return DestRoom{Absolute: true, X: x, Y: y, SpawnX: spawnX, SpawnY: spawnY}
}

// Resolve returns the destination room coordinate when the exit is taken
// from current.
func (d DestRoom) Resolve(current Coordinate) Coordinate {
	if d.Absolute {
		return Coordinate{X: d.X, Y: d.Y}
	}
	return current.Add(d.X, d.Y)
}

// SpawnPoint returns the cell the player is placed on in the destination.
func (d DestRoom) SpawnPoint() (int, int) {
	return d.SpawnX, d.SpawnY
}

// Cell is one grid position. Dest is only meaningful for Exit cells.
type Cell struct {
	Kind Kind
	Dest DestRoom
}

// Field is a cell together with its grid position.
type Field struct {
	X, Y int
	Cell Cell
}

// Room is a fixed size, row-major grid of cells. Row 0 is the south border.
type Room struct {
	Width  int
	Height int
	cells  []Cell
}

// New returns a room of the given size with every cell empty.
func New(width, height int) *Room {
	return &Room{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

func (r *Room) inside(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// Set writes a cell. Writes outside the grid are ignored.
func (r *Room) Set(x, y int, c Cell) {
	if r.inside(x, y) {
		r.cells[x+y*r.Width] = c
	}
}

// At returns the cell at (x, y) and false if it is outside the grid.
func (r *Room) At(x, y int) (Cell, bool) {
	if !r.inside(x, y) {
		return Cell{}, false
	}
	return r.cells[x+y*r.Width], true
}

// Fields iterates every cell once, row by row from the south border.
func (r *Room) Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				if !yield(Field{X: x, Y: y, Cell: r.cells[x+y*r.Width]}) {
					return
				}
			}
		}
	}
}

// Count returns how many cells hold the given kind.
func (r *Room) Count(kind Kind) int {
	n := 0
	for _, c := range r.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Find returns the first field of the given kind.
func (r *Room) Find(kind Kind) (Field, bool) {
	for f := range r.Fields() {
		if f.Cell.Kind == kind {
			return f, true
		}
	}
	return Field{}, false
}

// Walkable reports whether a character can stand on the cell.
func (r *Room) Walkable(x, y int) bool {
	c, ok := r.At(x, y)
	if !ok {
		return false
	}
	return c.Kind == Empty || c.Kind == PlayerSpawn
}
