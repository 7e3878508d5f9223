package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Fullscreen bool
	HighScore  int
}

var Settings = donburi.NewComponentType[SettingsData]()
