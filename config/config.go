// Package config holds the demo and engine tuning values. Defaults are
// set in init; Load applies optional YAML overrides on top.
package config

import "image/color"

// Config contains the window and level setup.
type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	LevelPath string `yaml:"level"`
}

// CollisionConfig contains the sweep engine tuning.
type CollisionConfig struct {
	// MinSpriteSize is the sweep chunk size. It must not exceed the
	// smallest collidable object in the level.
	MinSpriteSize float64 `yaml:"min_sprite_size"`
}

// PlayerConfig contains player movement values.
type PlayerConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	Gravity      float64 `yaml:"gravity"`
	Friction     float64 `yaml:"friction"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

var C *Config
var Collision CollisionConfig
var Player PlayerConfig

// Direction constants for player facing.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Shared RGBA color constants for the demo's vector rendering.
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Wall      = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	Platform  = color.RGBA{R: 170, G: 120, B: 60, A: 255}
	Sensor    = color.RGBA{R: 220, G: 200, B: 60, A: 255}
	PlayerCol = color.RGBA{R: 60, G: 180, B: 255, A: 255}
	Coin      = color.RGBA{R: 255, G: 220, B: 40, A: 255}
	Mover     = color.RGBA{R: 120, G: 220, B: 120, A: 255}
)

func init() {
	C = &Config{
		Width:     640,
		Height:    360,
		Title:     "planar demo",
		LevelPath: "levels/demo.tmx",
	}

	Collision = CollisionConfig{
		MinSpriteSize: 16,
	}

	Player = PlayerConfig{
		Acceleration: 0.5,
		MaxSpeed:     4,
		JumpSpeed:    10,
		Gravity:      0.75,
		Friction:     0.4,

		Width:  12,
		Height: 14,
	}
}
