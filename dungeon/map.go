package dungeon

import (
	"cmp"
	"iter"
	"slices"

	"github.com/automoto/swordcrawl/room"
)

// Coordinate addresses a room in the dungeon.
type Coordinate = room.Coordinate

// Map associates room coordinates with room-like values. Iteration is
// ordered by X, then Y.
type Map[T any] struct {
	rooms map[Coordinate]T
}

// NewMap returns an empty map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{rooms: make(map[Coordinate]T)}
}

// Insert adds v at c. It returns false and leaves the map untouched when c is
// already occupied.
func (m *Map[T]) Insert(c Coordinate, v T) bool {
	if _, ok := m.rooms[c]; ok {
		return false
	}
	m.rooms[c] = v
	return true
}

// Get returns the value at c.
func (m *Map[T]) Get(c Coordinate) (T, bool) {
	v, ok := m.rooms[c]
	return v, ok
}

// Has reports whether c is occupied.
func (m *Map[T]) Has(c Coordinate) bool {
	_, ok := m.rooms[c]
	return ok
}

// GetOrInsert returns the value at c, creating it with f first if needed.
func (m *Map[T]) GetOrInsert(c Coordinate, f func() T) T {
	if v, ok := m.rooms[c]; ok {
		return v
	}
	v := f()
	m.rooms[c] = v
	return v
}

func (m *Map[T]) Len() int {
	return len(m.rooms)
}

// Coordinates returns every occupied coordinate in iteration order.
func (m *Map[T]) Coordinates() []Coordinate {
	cs := make([]Coordinate, 0, len(m.rooms))
	for c := range m.rooms {
		cs = append(cs, c)
	}
	slices.SortFunc(cs, compareCoordinates)
	return cs
}

// All iterates the map in coordinate order.
func (m *Map[T]) All() iter.Seq2[Coordinate, T] {
	return func(yield func(Coordinate, T) bool) {
		for _, c := range m.Coordinates() {
			if !yield(c, m.rooms[c]) {
				return
			}
		}
	}
}

func compareCoordinates(a, b Coordinate) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}
