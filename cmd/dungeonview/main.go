// Command dungeonview prints a generated dungeon in the terminal. The left
// pane is the room graph, the right pane the cells of the selected room.
// Arrow keys follow exits, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/dungeon"
	"github.com/automoto/swordcrawl/logger"
	"github.com/automoto/swordcrawl/room"
	"github.com/gdamore/tcell/v2"
)

var cellStyles = map[room.Kind]struct {
	r     rune
	style tcell.Style
}{
	room.Empty:       {'.', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	room.Wall:        {'#', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	room.Stone:       {'o', tcell.StyleDefault.Foreground(tcell.ColorSilver)},
	room.Bush:        {'"', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	room.PlayerSpawn: {'@', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
	room.Exit:        {'+', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
}

type viewer struct {
	screen  tcell.Screen
	seed    int64
	rooms   *dungeon.Map[*room.Room]
	current room.Coordinate
}

func main() {
	seed := flag.Int64("seed", config.Dungeon.Seed, "Dungeon seed")
	corridor := flag.Int("corridor", config.Dungeon.CorridorLength, "Number of corridor steps")
	flag.Parse()

	logger.Discard()

	gen := dungeon.Generator{
		CorridorLength: *corridor,
		Splits:         config.Dungeon.Splits,
		RoomWidth:      config.Room.Width,
		RoomHeight:     config.Room.Height,
	}
	rooms, err := gen.Generate(rand.New(rand.NewSource(*seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, seed: *seed, rooms: rooms}
	v.run()
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
			switch ev.Key() {
			case tcell.KeyUp:
				v.follow(dungeon.North)
			case tcell.KeyDown:
				v.follow(dungeon.South)
			case tcell.KeyLeft:
				v.follow(dungeon.West)
			case tcell.KeyRight:
				v.follow(dungeon.East)
			}
		case *tcell.EventResize:
			v.screen.Sync()
		case nil:
			return
		}
	}
}

// follow moves to the neighbour in dir if the current room has an exit there.
func (v *viewer) follow(dir dungeon.Direction) {
	r, ok := v.rooms.Get(v.current)
	if !ok {
		return
	}
	target := v.current.Add(dir.Delta())
	for f := range r.Fields() {
		if f.Cell.Kind == room.Exit && f.Cell.Dest.Resolve(v.current) == target && v.rooms.Has(target) {
			v.current = target
			return
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()

	// Graph pane, one character per room
	minX, minY := 0, 0
	for _, c := range v.rooms.Coordinates() {
		minX, minY = min(minX, c.X), min(minY, c.Y)
	}
	graphW := 0
	for _, c := range v.rooms.Coordinates() {
		x, y := (c.X-minX)*2, (c.Y-minY)+2
		style := tcell.StyleDefault.Foreground(tcell.ColorTeal)
		if c == v.current {
			style = style.Reverse(true)
		}
		v.screen.SetContent(x, y, '■', nil, style)
		graphW = max(graphW, x+2)
	}

	// Room pane, north at the top
	r, _ := v.rooms.Get(v.current)
	offsetX := graphW + 2
	for f := range r.Fields() {
		cs := cellStyles[f.Cell.Kind]
		v.screen.SetContent(offsetX+f.X, 2+r.Height-1-f.Y, cs.r, nil, cs.style)
	}

	header := fmt.Sprintf("seed %d  rooms %d  room %d,%d", v.seed, v.rooms.Len(), v.current.X, v.current.Y)
	for i, ch := range header {
		v.screen.SetContent(i, 0, ch, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}
