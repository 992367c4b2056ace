package systems

import (
	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var bodies = donburi.NewQuery(filter.Contains(
	components.Position,
	components.Bounds,
))

// DrawDebug outlines every collision rect and the enemies' current paths.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	w := ecs.World
	height := roomHeight(w)
	c := cfg.UI.Colors["debug"]

	bodies.Each(w, func(e *donburi.Entry) {
		r := components.Bounds.Get(e).World(components.Position.Get(e))
		vector.StrokeRect(screen,
			float32(r.Left), float32(height-r.Top),
			float32(r.Width()), float32(r.Height()),
			1, c, false)
	})

	components.Enemy.Each(w, func(e *donburi.Entry) {
		for _, p := range components.Enemy.Get(e).Path {
			vector.FillRect(screen, float32(p.X-1), float32(height-p.Y-1), 2, 2, c, false)
		}
	})
}

// UpdateDebugToggle flips the overlay on the toggle press edge and persists
// the choice.
func UpdateDebugToggle(ecs *ecs.ECS) {
	in := input(ecs.World)
	if in == nil || !in.State(cfg.ActionToggleDebug).JustPressed {
		return
	}
	cfg.Debug.Overlay = !cfg.Debug.Overlay

	settings := LoadSettings()
	settings.DebugOverlay = cfg.Debug.Overlay
	_ = SaveSettings(settings)
}
