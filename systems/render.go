package systems

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	drawables = donburi.NewQuery(filter.Contains(
		components.Position,
		components.Sprite,
	))

	// Reused between frames to avoid allocations
	drawList []*donburi.Entry
)

// roomHeight returns the room height in world units, used to flip Y.
func roomHeight(w donburi.World) float64 {
	entry, ok := components.Dungeon.First(w)
	if !ok || components.Dungeon.Get(entry).Room == nil {
		return float64(cfg.C.Height)
	}
	return float64(components.Dungeon.Get(entry).Room.Height) * cfg.C.TileSize
}

// DrawRoom renders every sprite entity, further north first so southern
// entities overlap them.
func DrawRoom(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World
	screen.Fill(cfg.UI.Background)
	height := roomHeight(w)

	drawList = drawList[:0]
	drawables.Each(w, func(e *donburi.Entry) {
		drawList = append(drawList, e)
	})
	slices.SortStableFunc(drawList, func(a, b *donburi.Entry) int {
		return cmp.Compare(components.Position.Get(a).Depth, components.Position.Get(b).Depth)
	})

	atlas := factory.Atlas()
	for _, e := range drawList {
		pos := components.Position.Get(e)
		sprite := components.Sprite.Get(e)
		halfW, halfH := spriteHalfSize(e)

		// Screen space: Y down, origin top-left
		sx := pos.X - halfW
		sy := height - pos.Y - halfH

		var img *ebiten.Image
		if atlas != nil {
			img = atlas.Frame(sprite.Frame)
		}

		if img == nil {
			c := cfg.UI.Colors[sprite.Name]
			if e.HasComponent(components.Flash) {
				c = flashColor(c, components.Flash.Get(e))
			}
			vector.FillRect(screen, float32(sx), float32(sy), float32(halfW*2), float32(halfH*2), c, false)
			continue
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		b := img.Bounds()
		drawOp.GeoM.Scale(halfW*2/float64(b.Dx()), halfH*2/float64(b.Dy()))
		drawOp.GeoM.Translate(sx, sy)
		if e.HasComponent(components.Flash) {
			f := components.Flash.Get(e)
			drawOp.ColorScale.Scale(f.R, f.G, f.B, 1)
		}
		screen.DrawImage(img, drawOp)
	}
}

// spriteHalfSize is the drawn half extent: the bounds for bodies, the
// particle size otherwise.
func spriteHalfSize(e *donburi.Entry) (float64, float64) {
	if e.HasComponent(components.Bounds) {
		b := components.Bounds.Get(e)
		return b.Width() / 2, b.Height() / 2
	}
	return cfg.Particles.HalfSize, cfg.Particles.HalfSize
}

func flashColor(c color.RGBA, f *components.FlashData) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * min(f.R, 1)),
		G: uint8(float32(c.G) * min(f.G, 1)),
		B: uint8(float32(c.B) * min(f.B, 1)),
		A: c.A,
	}
}

// DrawTransition covers the room with the fade overlay.
func DrawTransition(ecs *ecs.ECS, screen *ebiten.Image) {
	t := transition(ecs.World)
	if t == nil || t.Alpha <= 0 {
		return
	}
	b := screen.Bounds()
	c := cfg.Transition.Color
	c.A = uint8(255 * min(t.Alpha, 1))
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
