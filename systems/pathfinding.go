package systems

import (
	astar "github.com/beefsack/go-astar"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/swordcrawl/components"
	"github.com/automoto/swordcrawl/systems/factory"
	"github.com/automoto/swordcrawl/tags"
)

// nearestWalkableRadius bounds the ring search for a free cell.
const nearestWalkableRadius = 10

// obstacles are the static cells enemies route around. Movers are not
// obstacles; the physics pass separates them.
var obstacles = donburi.NewQuery(filter.And(
	filter.Contains(components.Position),
	filter.Or(
		filter.Contains(tags.Wall),
		filter.Contains(tags.Stone),
		filter.Contains(tags.Bush),
		filter.Contains(tags.Exit),
	),
))

// NavGrid represents the walkable cells of a room
type NavGrid struct {
	Width, Height int
	Nodes         [][]*NavNode // indexed [y][x]
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Y     int
	Walkable bool
	Grid     *NavGrid
}

var cardinal = [4]struct{ dx, dy int }{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather)
func (n *NavNode) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, len(cardinal))
	for _, d := range cardinal {
		if next := n.Grid.Node(n.X+d.dx, n.Y+d.dy); next != nil && next.Walkable {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

// PathNeighborCost is 1 for every cardinal step (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost is the Manhattan distance (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	return float64(absInt(toNode.X-n.X) + absInt(toNode.Y-n.Y))
}

// NewNavGrid returns a fully walkable grid.
func NewNavGrid(width, height int) *NavGrid {
	grid := &NavGrid{
		Width:  width,
		Height: height,
		Nodes:  make([][]*NavNode, height),
	}
	for y := 0; y < height; y++ {
		grid.Nodes[y] = make([]*NavNode, width)
		for x := 0; x < width; x++ {
			grid.Nodes[y][x] = &NavNode{X: x, Y: y, Walkable: true, Grid: grid}
		}
	}
	return grid
}

// CreateNavGrid builds a grid for a room from the obstacles still alive in
// the world, so broken bushes open up.
func CreateNavGrid(w donburi.World, width, height int) *NavGrid {
	grid := NewNavGrid(width, height)
	obstacles.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		grid.Block(factory.WorldCell(pos.X, pos.Y))
	})
	return grid
}

// Node returns the node at (x, y), nil outside the grid.
func (g *NavGrid) Node(x, y int) *NavNode {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

// Block marks a cell as not walkable.
func (g *NavGrid) Block(x, y int) {
	if n := g.Node(x, y); n != nil {
		n.Walkable = false
	}
}

// FindPath searches from one world position to another and returns the
// cell centers to walk through, start cell excluded. Nil when unreachable.
func (g *NavGrid) FindPath(startX, startY, goalX, goalY float64) []math.Vec2 {
	if g.Width == 0 || g.Height == 0 {
		return nil
	}
	sx, sy := factory.WorldCell(startX, startY)
	gx, gy := factory.WorldCell(goalX, goalY)
	startNode := g.Nodes[clampInt(sy, 0, g.Height-1)][clampInt(sx, 0, g.Width-1)]
	goalNode := g.Nodes[clampInt(gy, 0, g.Height-1)][clampInt(gx, 0, g.Width-1)]

	// Handle case where start or goal is inside an obstacle
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(startNode.X, startNode.Y)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(goalNode.X, goalNode.Y)
	}
	if startNode == nil || goalNode == nil {
		return nil
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	// go-astar returns goal first
	result := make([]math.Vec2, 0, len(path))
	for i := len(path) - 2; i >= 0; i-- {
		node := path[i].(*NavNode)
		x, y := factory.CellCenter(node.X, node.Y)
		result = append(result, math.NewVec2(x, y))
	}
	return result
}

// findNearestWalkable finds the nearest walkable node to the given cell
func (g *NavGrid) findNearestWalkable(x, y int) *NavNode {
	for radius := 1; radius < nearestWalkableRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.Node(x+dx, y+dy); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
