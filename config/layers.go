package config

import "github.com/yohamta/donburi/ecs"

// ECS layers. The demo renders everything on one layer.
const (
	Default ecs.LayerID = iota
)
