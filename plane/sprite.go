package plane

import "github.com/automoto/planar/geom"

// Sprite is a movable rectangular entity on a SpritePlane. The engine
// reads its bounds and flags during sweeps and writes the corrected
// position back after a blocking contact; everything else about a sprite
// (animation, health, rendering) belongs to the host.
type Sprite struct {
	X, Y          float64
	Width, Height float64

	// Per-tick movement deltas used by Move.
	SpeedX, SpeedY float64

	// Collisions makes the sprite visible to sweeps. Solid blocks
	// movement from every direction; Ground blocks only downward entry
	// through the top edge.
	Collisions bool
	Solid      bool
	Ground     bool

	// Type is a free-form label game logic can filter and branch on.
	Type string

	plane  *SpritePlane
	active bool
}

// Rect returns the sprite's current bounds.
func (s *Sprite) Rect() *geom.Rect {
	return geom.NewRectSize(s.X, s.Y, s.Width, s.Height)
}

// Active reports whether the sprite is currently on a plane.
func (s *Sprite) Active() bool { return s.active }

// Move sweeps the sprite by its own SpeedX/SpeedY, applying any
// correction. Returns nil when nothing was contacted.
func (s *Sprite) Move() *Hit {
	return s.plane.MoveSprite(s, s.SpeedX, s.SpeedY)
}

// MoveBy sweeps the sprite by an explicit delta instead of its speeds.
func (s *Sprite) MoveBy(dx, dy float64) *Hit {
	return s.plane.MoveSprite(s, dx, dy)
}

// Query filters FindSprites results. The zero value matches every active
// sprite; a nil flag pointer means "any value".
type Query struct {
	Type       string
	Collisions *bool
	Solid      *bool
	Ground     *bool
}

// Flag is a convenience for building Query flag filters inline.
func Flag(v bool) *bool { return &v }

func (q *Query) matches(s *Sprite) bool {
	if q == nil {
		return true
	}
	if q.Type != "" && s.Type != q.Type {
		return false
	}
	if q.Collisions != nil && s.Collisions != *q.Collisions {
		return false
	}
	if q.Solid != nil && s.Solid != *q.Solid {
		return false
	}
	if q.Ground != nil && s.Ground != *q.Ground {
		return false
	}
	return true
}
