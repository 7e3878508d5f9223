package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the config structs with pointer fields so absent
// YAML keys keep their defaults.
type overrides struct {
	Width     *int    `yaml:"width"`
	Height    *int    `yaml:"height"`
	Title     *string `yaml:"title"`
	LevelPath *string `yaml:"level"`

	Collision struct {
		MinSpriteSize *float64 `yaml:"min_sprite_size"`
	} `yaml:"collision"`

	Player struct {
		Acceleration *float64 `yaml:"acceleration"`
		MaxSpeed     *float64 `yaml:"max_speed"`
		JumpSpeed    *float64 `yaml:"jump_speed"`
		Gravity      *float64 `yaml:"gravity"`
		Friction     *float64 `yaml:"friction"`
		Width        *float64 `yaml:"width"`
		Height       *float64 `yaml:"height"`
	} `yaml:"player"`
}

// Load applies YAML overrides from path on top of the built-in
// defaults. A missing file is not an error; a malformed one is.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var ov overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setInt(&C.Width, ov.Width)
	setInt(&C.Height, ov.Height)
	setString(&C.Title, ov.Title)
	setString(&C.LevelPath, ov.LevelPath)

	setFloat(&Collision.MinSpriteSize, ov.Collision.MinSpriteSize)

	setFloat(&Player.Acceleration, ov.Player.Acceleration)
	setFloat(&Player.MaxSpeed, ov.Player.MaxSpeed)
	setFloat(&Player.JumpSpeed, ov.Player.JumpSpeed)
	setFloat(&Player.Gravity, ov.Player.Gravity)
	setFloat(&Player.Friction, ov.Player.Friction)
	setFloat(&Player.Width, ov.Player.Width)
	setFloat(&Player.Height, ov.Player.Height)

	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
