package systems

import (
	"fmt"

	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the current room and seed in the top-left corner when the
// debug overlay is on.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	entry, ok := components.Dungeon.First(ecs.World)
	if !ok {
		return
	}
	d := components.Dungeon.Get(entry)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("room %d,%d of %d  seed %d  tps %.0f",
		d.Current.X, d.Current.Y, d.Rooms, d.Seed, ebiten.ActualTPS()))
}
