package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/automoto/planar/components"
)

// SavedSettings is the settings data stored on disk.
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	HighScore  int  `json:"highScore"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata manager for settings storage. Failure
// is logged, not fatal: the demo runs fine without saved settings.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "planar-demo",
	})
	if err != nil {
		log.Printf("Warning: could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. Returns nil when nothing is
// stored yet or persistence is unavailable.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: could not load settings: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: could not parse saved settings: %v", err)
		return nil
	}
	return &settings
}

// SaveSettings writes the current settings component to disk.
func SaveSettings(s *components.SettingsData) {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(&SavedSettings{
		Fullscreen: s.Fullscreen,
		HighScore:  s.HighScore,
	})
	if err != nil {
		log.Printf("Warning: could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: could not save settings: %v", err)
	}
}
