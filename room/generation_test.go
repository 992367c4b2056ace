package room

import (
	"errors"
	"math/rand"
	"testing"
)

func isBorder(r *Room, x, y int) bool {
	return x == 0 || y == 0 || x == r.Width-1 || y == r.Height-1
}

func TestGenerateBorders(t *testing.T) {
	tests := []struct {
		name string
		gen  Generation
		// expected exit cells and their destination deltas
		exits map[[2]int][2]int
	}{
		{"closed", Generation{Width: 12, Height: 9}, map[[2]int][2]int{}},
		{"north", Generation{Width: 12, Height: 9, North: true}, map[[2]int][2]int{{6, 8}: {0, -1}}},
		{"south", Generation{Width: 12, Height: 9, South: true}, map[[2]int][2]int{{6, 0}: {0, 1}}},
		{"east", Generation{Width: 12, Height: 9, East: true}, map[[2]int][2]int{{11, 4}: {1, 0}}},
		{"west", Generation{Width: 12, Height: 9, West: true}, map[[2]int][2]int{{0, 4}: {-1, 0}}},
		{"all", Generation{Width: 7, Height: 6, North: true, South: true, East: true, West: true},
			map[[2]int][2]int{{3, 5}: {0, -1}, {3, 0}: {0, 1}, {6, 3}: {1, 0}, {0, 3}: {-1, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				r, err := tt.gen.Generate(rand.New(rand.NewSource(seed)))
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				for f := range r.Fields() {
					if !isBorder(r, f.X, f.Y) {
						continue
					}
					delta, isExit := tt.exits[[2]int{f.X, f.Y}]
					switch {
					case isExit && f.Cell.Kind != Exit:
						t.Errorf("seed %d: cell (%d,%d) = %v, want exit", seed, f.X, f.Y, f.Cell.Kind)
					case isExit && (f.Cell.Dest.X != delta[0] || f.Cell.Dest.Y != delta[1]):
						t.Errorf("seed %d: exit (%d,%d) leads (%d,%d), want %v", seed, f.X, f.Y, f.Cell.Dest.X, f.Cell.Dest.Y, delta)
					case !isExit && f.Cell.Kind != Wall:
						t.Errorf("seed %d: border cell (%d,%d) = %v, want wall", seed, f.X, f.Y, f.Cell.Kind)
					}
				}
				if got := r.Count(Exit); got != len(tt.exits) {
					t.Errorf("seed %d: %d exits, want %d", seed, got, len(tt.exits))
				}
			}
		})
	}
}

func TestGenerateInterior(t *testing.T) {
	gen := Generation{Width: 10, Height: 8}
	for seed := int64(0); seed < 50; seed++ {
		r, err := gen.Generate(rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if n := r.Count(PlayerSpawn); n != 1 {
			t.Fatalf("seed %d: %d spawn cells, want 1", seed, n)
		}
		stones, bushes := r.Count(Stone), r.Count(Bush)
		if stones > 7 || bushes < 1 || bushes > 7 {
			t.Errorf("seed %d: %d stones, %d bushes; want at most 7 stones and 1..7 bushes", seed, stones, bushes)
		}
		for f := range r.Fields() {
			switch f.Cell.Kind {
			case Stone, Bush, PlayerSpawn:
				if f.X < 2 || f.X >= gen.Width-3 || f.Y < 2 || f.Y >= gen.Height-3 {
					t.Errorf("seed %d: %v at (%d,%d) outside interior", seed, f.Cell.Kind, f.X, f.Y)
				}
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	gen := Generation{Width: 14, Height: 10, North: true, East: true}
	a, _ := gen.Generate(rand.New(rand.NewSource(42)))
	b, _ := gen.Generate(rand.New(rand.NewSource(42)))
	for f := range a.Fields() {
		if c, _ := b.At(f.X, f.Y); c != f.Cell {
			t.Fatalf("cell (%d,%d) differs: %v vs %v", f.X, f.Y, f.Cell, c)
		}
	}
}

func TestGenerateTooSmall(t *testing.T) {
	for _, size := range [][2]int{{5, 10}, {10, 5}, {0, 0}, {3, 3}} {
		gen := Generation{Width: size[0], Height: size[1]}
		if _, err := gen.Generate(rand.New(rand.NewSource(1))); !errors.Is(err, ErrRoomTooSmall) {
			t.Errorf("%dx%d: got %v, want ErrRoomTooSmall", size[0], size[1], err)
		}
	}
	gen := Generation{Width: MinSize, Height: MinSize}
	if _, err := gen.Generate(rand.New(rand.NewSource(1))); err != nil {
		t.Errorf("minimum size: %v", err)
	}
}

func TestExitSpawnsInsideNeighbour(t *testing.T) {
	gen := Generation{Width: 12, Height: 9, North: true, South: true, East: true, West: true}
	r, _ := gen.Generate(rand.New(rand.NewSource(3)))
	for f := range r.Fields() {
		if f.Cell.Kind != Exit {
			continue
		}
		sx, sy := f.Cell.Dest.SpawnPoint()
		if isBorder(r, sx, sy) {
			t.Errorf("exit (%d,%d) spawns on border cell (%d,%d)", f.X, f.Y, sx, sy)
		}
		// the spawn sits one cell in from the border opposite the exit
		switch {
		case f.Cell.Dest.Y == -1 && sy != 1:
			t.Errorf("north exit spawn y = %d, want 1", sy)
		case f.Cell.Dest.Y == 1 && sy != gen.Height-2:
			t.Errorf("south exit spawn y = %d, want %d", sy, gen.Height-2)
		case f.Cell.Dest.X == 1 && sx != 1:
			t.Errorf("east exit spawn x = %d, want 1", sx)
		case f.Cell.Dest.X == -1 && sx != gen.Width-2:
			t.Errorf("west exit spawn x = %d, want %d", sx, gen.Width-2)
		}
	}
}
