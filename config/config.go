package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the dungeon scene uses.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TileSize float64
	TPS      int
}

// RoomConfig sets the size of every generated room in cells.
type RoomConfig struct {
	Width  int
	Height int
}

// DungeonConfig contains dungeon generation parameters
type DungeonConfig struct {
	CorridorLength int
	Splits         int // accepted, not read by the walk
	Seed           int64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed    float64 // units per second on each axis
	HalfSize float64 // collision rect is a square of this half extent
	Sprite   string  // animation name prefix, e.g. "hero" for hero_walk_up
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	SwordDamage   float64
	SwordDuration float64 // seconds
	SwordHalfSize float64

	BushHealth float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Movers above this count get a parallel narrow phase.
	ParallelThreshold int

	// resolv cell size in world units
	SpaceCellSize int
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	PerRoom     int
	Speed       float64
	Health      float64
	HalfSize    float64
	RepathEvery float64 // seconds
	Sprite      string
}

// ParticlesConfig controls the burst spawned when something breaks
type ParticlesConfig struct {
	Count    int
	Lifespan float64
	Speed    float64
	HalfSize float64
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	FrameTime float64 // seconds per frame
}

// TransitionConfig controls the fade between rooms
type TransitionConfig struct {
	Duration float32 // seconds for each half of the fade
	Color    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // draw bounding rects and the HUD line
}

// UIConfig contains render colors for the placeholder renderer.
type UIConfig struct {
	Background color.RGBA
	Colors     map[string]color.RGBA
}

// Global configuration instances
var C *Config
var Room RoomConfig
var Dungeon DungeonConfig
var Player PlayerConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Enemy EnemyConfig
var Particles ParticlesConfig
var Animation AnimationConfig
var Transition TransitionConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	DarkGreen    = color.RGBA{R: 30, G: 120, B: 40, A: 255}
	Grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGrey     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Black        = color.RGBA{A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:    640,
		Height:   480,
		TileSize: 32,
		TPS:      60,
	}

	Room = RoomConfig{
		Width:  20,
		Height: 15,
	}

	Dungeon = DungeonConfig{
		CorridorLength: 12,
		Splits:         0,
		Seed:           1,
	}

	Player = PlayerConfig{
		Speed:    128.0,
		HalfSize: 16.0,
		Sprite:   "hero",
	}

	Combat = CombatConfig{
		SwordDamage:   1.0,
		SwordDuration: 0.2,
		SwordHalfSize: 16.0,

		BushHealth: 0.5,
	}

	Physics = PhysicsConfig{
		ParallelThreshold: 64,
		SpaceCellSize:     16,
	}

	Enemy = EnemyConfig{
		PerRoom:     2,
		Speed:       64.0,
		Health:      2.0,
		HalfSize:    14.0,
		RepathEvery: 0.5,
		Sprite:      "slime",
	}

	Particles = ParticlesConfig{
		Count:    6,
		Lifespan: 0.3,
		Speed:    96.0,
		HalfSize: 2.0,
	}

	Animation = AnimationConfig{
		FrameTime: 0.1,
	}

	Transition = TransitionConfig{
		Duration: 0.25,
		Color:    Black,
	}

	Debug = DebugConfig{
		Overlay: false,
	}

	UI = UIConfig{
		Background: DarkGrey,
		Colors: map[string]color.RGBA{
			"wall":     Grey,
			"stone":    White,
			"bush":     DarkGreen,
			"exit":     Yellow,
			"hero":     LightBlue,
			"slime":    Red,
			"sword":    Orange,
			"particle": Green,
			"debug":    Magenta,
		},
	}
}
