package systems

import (
	"encoding/json"

	cfg "github.com/automoto/swordcrawl/config"
	"github.com/automoto/swordcrawl/logger"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Seed         int64 `json:"seed"`
	ScaleIndex   int   `json:"scaleIndex"`
	DebugOverlay bool  `json:"debugOverlay"`
}

// DefaultSettings returns the settings used when nothing is saved yet.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		Seed:         cfg.Dungeon.Seed,
		ScaleIndex:   cfg.Settings.DefaultScale,
		DebugOverlay: cfg.Debug.Overlay,
	}
}

// Scale returns the window scale for the saved index, the default scale
// when the index is out of range.
func (s SavedSettings) Scale() float64 {
	if s.ScaleIndex < 0 || s.ScaleIndex >= len(cfg.Settings.Scales) {
		return cfg.Settings.Scales[cfg.Settings.DefaultScale]
	}
	return cfg.Settings.Scales[s.ScaleIndex]
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. Without persistence or saved data
// it returns the defaults.
func LoadSettings() SavedSettings {
	settings := DefaultSettings()
	if gdataManager == nil {
		return settings
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.Log.WithError(err).Warn("could not load settings")
		return settings
	}
	if len(data) == 0 {
		return settings
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Log.WithError(err).Warn("could not parse saved settings")
		return DefaultSettings()
	}
	return settings
}

// SaveSettings saves settings to disk
func SaveSettings(s SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logger.Log.WithError(err).Warn("could not serialize settings")
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logger.Log.WithError(err).Warn("could not save settings")
		return err
	}
	return nil
}
