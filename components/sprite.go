package components

import "github.com/yohamta/donburi"

// SpriteData selects a frame of the sprite atlas. Name is the atlas key the
// entity was created from and picks the fallback color.
type SpriteData struct {
	Name  string
	Frame int
}

var Sprite = donburi.NewComponentType[SpriteData]()
