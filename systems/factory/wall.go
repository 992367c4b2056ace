package factory

import (
	"github.com/automoto/swordcrawl/archetypes"
	"github.com/automoto/swordcrawl/components"
	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/gamemath"
	"github.com/automoto/swordcrawl/room"
	"github.com/automoto/swordcrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func tileRect() gamemath.Rect {
	return gamemath.Square(cfg.C.TileSize / 2)
}

func CreateWall(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	attachBody(ecs, wall, x, y, tileRect(), tags.ResolvSolid)
	components.Sprite.SetValue(wall, components.SpriteData{Name: cfg.ImageWall, Frame: imageIndex(cfg.ImageWall)})
	return wall
}

func CreateStone(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	stone := archetypes.Stone.Spawn(ecs)
	attachBody(ecs, stone, x, y, tileRect(), tags.ResolvSolid)
	components.Sprite.SetValue(stone, components.SpriteData{Name: cfg.ImageStone, Frame: imageIndex(cfg.ImageStone)})
	return stone
}

// CreateBush creates a solid that breaks under the sword.
func CreateBush(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	bush := archetypes.Bush.Spawn(ecs)
	attachBody(ecs, bush, x, y, tileRect(), tags.ResolvSolid)
	components.Destroyable.SetValue(bush, components.DestroyableData{Health: cfg.Combat.BushHealth})
	components.Sprite.SetValue(bush, components.SpriteData{Name: cfg.ImageBush, Frame: imageIndex(cfg.ImageBush)})
	components.Flash.SetValue(bush, components.NewFlash())
	return bush
}

// CreateExit creates a solid exit cell that moves the player to dest when
// touched.
func CreateExit(ecs *ecs.ECS, x, y float64, dest room.DestRoom) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)
	attachBody(ecs, exit, x, y, tileRect(), tags.ResolvSolid, tags.ResolvExit)
	components.Exit.SetValue(exit, components.ExitData{Dest: dest})
	components.Sprite.SetValue(exit, components.SpriteData{Name: cfg.ImageExit, Frame: imageIndex(cfg.ImageExit)})
	return exit
}
