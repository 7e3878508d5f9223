package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Direction float64 // -1 left, 1 right
	Score     int
}

var Player = donburi.NewComponentType[PlayerData]()
