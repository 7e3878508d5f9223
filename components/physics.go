package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	Friction float64
	MaxSpeed float64

	// OnGround is set by the movement system when the last vertical
	// sweep was blocked downward.
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
