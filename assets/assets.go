package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"regexp"
	"slices"

	"github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:sprites
	spriteFS embed.FS
)

// DefaultAtlasPath is the embedded atlas map.
const DefaultAtlasPath = "sprites/atlas.tmx"

// frameSuffix marks a sprite as one frame of an animation.
var frameSuffix = regexp.MustCompile(`_\d+$`)

// NamedSprite is one tile of the atlas tileset with its "name" property.
type NamedSprite struct {
	Index int
	Name  string
}

// Atlas maps sprite names to atlas frame indices. Names ending in _<n> are
// collected into animations in tile order, all others are single images.
type Atlas struct {
	Animations map[string][]int
	Images     map[string]int

	TileWidth  int
	TileHeight int
	Columns    int
	Count      int

	imagePath string
	sheet     *ebiten.Image
	frames    map[int]*ebiten.Image
}

// Group splits sprites into animations and images.
func Group(sprites []NamedSprite) (map[string][]int, map[string]int) {
	animations := make(map[string][]int)
	images := make(map[string]int)
	for _, s := range sprites {
		if frameSuffix.MatchString(s.Name) {
			name := frameSuffix.ReplaceAllString(s.Name, "")
			animations[name] = append(animations[name], s.Index)
		} else {
			images[s.Name] = s.Index
		}
	}
	return animations, images
}

// ParseAtlas reads the first tileset of a Tiled map. The sprite sheet image
// is not decoded; call LoadSheet for that.
func ParseAtlas(fsys fs.FS, mapPath string) (*Atlas, error) {
	m, err := tiled.LoadFile(mapPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load atlas %s: %w", mapPath, err)
	}
	if len(m.Tilesets) == 0 {
		return nil, fmt.Errorf("atlas %s: no tileset", mapPath)
	}
	ts := m.Tilesets[0]

	sprites := make([]NamedSprite, 0, len(ts.Tiles))
	for _, t := range ts.Tiles {
		name := t.Properties.GetString("name")
		if name == "" {
			continue
		}
		sprites = append(sprites, NamedSprite{Index: int(t.ID), Name: name})
	}
	slices.SortFunc(sprites, func(a, b NamedSprite) int { return a.Index - b.Index })

	a := &Atlas{
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		Columns:    ts.Columns,
		Count:      ts.TileCount,
		frames:     make(map[int]*ebiten.Image),
	}
	a.Animations, a.Images = Group(sprites)
	if ts.Image != nil {
		a.imagePath = path.Join(path.Dir(mapPath), ts.Image.Source)
	}
	return a, nil
}

// LoadSheet decodes the tileset image so Frame can return sub-images.
func (a *Atlas) LoadSheet(fsys fs.FS) error {
	if a.imagePath == "" {
		return errors.New("atlas has no image")
	}
	data, err := fs.ReadFile(fsys, a.imagePath)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", a.imagePath, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode sheet %s: %w", a.imagePath, err)
	}
	a.sheet = img
	return nil
}

// Animation returns the frames of a named animation, or the single-frame
// fallback clip if the atlas does not define it.
func (a *Atlas) Animation(name string) []int {
	if keys, ok := a.Animations[name]; ok {
		return keys
	}
	logger.Log.WithField("animation", name).Debug("missing animation, using fallback")
	return config.FallbackClip
}

// Image returns the frame index of a named image, 0 if missing.
func (a *Atlas) Image(name string) int {
	if i, ok := a.Images[name]; ok {
		return i
	}
	logger.Log.WithField("image", name).Debug("missing image, using frame 0")
	return 0
}

// Frame returns the cached sub-image for an atlas index, nil when no sheet
// is loaded.
func (a *Atlas) Frame(index int) *ebiten.Image {
	if a.sheet == nil || a.Columns <= 0 {
		return nil
	}
	if img, ok := a.frames[index]; ok {
		return img
	}
	x := (index % a.Columns) * a.TileWidth
	y := (index / a.Columns) * a.TileHeight
	img := a.sheet.SubImage(image.Rect(x, y, x+a.TileWidth, y+a.TileHeight)).(*ebiten.Image)
	a.frames[index] = img
	return img
}

// LoadAtlas parses the atlas at mapPath and decodes its sheet.
func LoadAtlas(fsys fs.FS, mapPath string) (*Atlas, error) {
	a, err := ParseAtlas(fsys, mapPath)
	if err != nil {
		return nil, err
	}
	if err := a.LoadSheet(fsys); err != nil {
		return nil, err
	}
	return a, nil
}

// MustLoadAtlas loads the embedded atlas and its sheet.
func MustLoadAtlas() *Atlas {
	a, err := LoadAtlas(spriteFS, DefaultAtlasPath)
	if err != nil {
		panic(err)
	}
	return a
}

// EmbeddedFS exposes the embedded sprite files.
func EmbeddedFS() fs.FS {
	return spriteFS
}
