package room

import (
	"errors"
	"fmt"
	"math/rand"
)

// MinSize is the smallest room edge that still leaves an interior for
// obstacles and the spawn cell.
const MinSize = 6

// interiorMargin keeps obstacles and the spawn off the border ring and off
// the cells exits spawn players on.
const interiorMargin = 2

// ErrRoomTooSmall is returned when a room cannot hold any interior content.
var ErrRoomTooSmall = errors.New("room too small")

// Generation describes a room before it is generated. It is consumed once.
type Generation struct {
	Width  int
	Height int

	North bool
	South bool
	East  bool
	West  bool
}

// Validate rejects sizes that would leave no interior range to draw from.
func (g *Generation) Validate() error {
	if g.Width < MinSize || g.Height < MinSize {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrRoomTooSmall, g.Width, g.Height, MinSize, MinSize)
	}
	return nil
}

// Generate draws the border and exits, scatters stones and bushes and picks
// the spawn cell. The result depends only on the descriptor and rng state.
func (g *Generation) Generate(rng *rand.Rand) (*Room, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	r := New(g.Width, g.Height)

	wall := Cell{Kind: Wall}
	for x := 0; x < g.Width; x++ {
		r.Set(x, 0, wall)
		r.Set(x, g.Height-1, wall)
	}
	for y := 0; y < g.Height; y++ {
		r.Set(0, y, wall)
		r.Set(g.Width-1, y, wall)
	}

	midX, midY := g.Width/2, g.Height/2
	if g.North {
		r.Set(midX, g.Height-1, Cell{Kind: Exit, Dest: Relative(0, -1, midX, 1)})
	}
	if g.South {
		r.Set(midX, 0, Cell{Kind: Exit, Dest: Relative(0, 1, midX, g.Height-2)})
	}
	if g.East {
		r.Set(g.Width-1, midY, Cell{Kind: Exit, Dest: Relative(1, 0, 1, midY)})
	}
	if g.West {
		r.Set(0, midY, Cell{Kind: Exit, Dest: Relative(-1, 0, g.Width-2, midY)})
	}

	// Placements may land on the same cell; the later one wins.
	stones := 5 + rng.Intn(3)
	for i := 0; i < stones; i++ {
		x, y := g.interior(rng)
		r.Set(x, y, Cell{Kind: Stone})
	}

	bushes := 5 + rng.Intn(3)
	for i := 0; i < bushes; i++ {
		x, y := g.interior(rng)
		r.Set(x, y, Cell{Kind: Bush})
	}

	x, y := g.interior(rng)
	r.Set(x, y, Cell{Kind: PlayerSpawn})

	return r, nil
}

// interior draws x in [2, W-3) and y in [2, H-3).
func (g *Generation) interior(rng *rand.Rand) (int, int) {
	x := interiorMargin + rng.Intn(g.Width-interiorMargin-3)
	y := interiorMargin + rng.Intn(g.Height-interiorMargin-3)
	return x, y
}
