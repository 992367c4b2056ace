package config

// SettingsConfig lists the window scales the game can persist.
type SettingsConfig struct {
	Scales       []float64
	DefaultScale int // index into Scales
	AppName      string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Scales:       []float64{1, 1.5, 2},
		DefaultScale: 0,
		AppName:      "swordcrawl",
	}
}
