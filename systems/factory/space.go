package factory

import (
	"github.com/automoto/swordcrawl/archetypes"
	"github.com/automoto/swordcrawl/components"
	"github.com/automoto/swordcrawl/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}

// attachBody places entry at (x, y) with the given collision rect and links a
// broad-phase object to it.
func attachBody(ecs *ecs.ECS, entry *donburi.Entry, x, y float64, rect gamemath.Rect, resolvTags ...string) *resolv.Object {
	components.Position.SetValue(entry, components.PositionData{X: x, Y: y, Depth: -y})
	components.Bounds.SetValue(entry, components.BoundsData{Rect: rect})

	area := components.BroadPhaseRect(rect.At(x, y))
	obj := resolv.NewObject(area.Left, area.Bottom, area.Width(), area.Height(), resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, area.Width(), area.Height()))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
