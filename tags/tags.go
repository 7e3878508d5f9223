package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Coin             = donburi.NewTag().SetName("Coin")
)

// Sprite type labels used on the collision plane.
const (
	TypePlayer   = "Player"
	TypeCoin     = "Coin"
	TypePlatform = "Platform"
)
