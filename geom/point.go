// Package geom provides the 2D primitives the collision engine is built
// on: a mutable Point and a half-open axis-aligned Rect. Mutating methods
// return the receiver so calls can be chained
// (p.Set(x, y).Offset(dx, dy).Floor()).
package geom

import "math"

// Point is a mutable 2D coordinate.
type Point struct {
	X, Y float64
}

// NewPoint returns a point at (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Set assigns both coordinates.
func (p *Point) Set(x, y float64) *Point {
	p.X = x
	p.Y = y
	return p
}

// SetPoint copies the coordinates of other.
func (p *Point) SetPoint(other *Point) *Point {
	return p.Set(other.X, other.Y)
}

// Offset translates the point by (dx, dy).
func (p *Point) Offset(dx, dy float64) *Point {
	p.X += dx
	p.Y += dy
	return p
}

// OffsetPoint translates the point by the coordinates of other.
func (p *Point) OffsetPoint(other *Point) *Point {
	return p.Offset(other.X, other.Y)
}

// Floor rounds both coordinates down to the nearest integer.
func (p *Point) Floor() *Point {
	p.X = math.Floor(p.X)
	p.Y = math.Floor(p.Y)
	return p
}

// Ceil rounds both coordinates up to the nearest integer.
func (p *Point) Ceil() *Point {
	p.X = math.Ceil(p.X)
	p.Y = math.Ceil(p.Y)
	return p
}

// Clone returns an independent copy.
func (p *Point) Clone() *Point {
	return &Point{X: p.X, Y: p.Y}
}

// Angle returns the angle from the point toward (x, y) in degrees, in
// [0, 360). 0 is along +x and angles grow counter-clockwise; screen Y
// grows downward, so the vertical delta is negated before atan2.
func (p *Point) Angle(x, y float64) float64 {
	deg := math.Atan2(-(y - p.Y), x-p.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleTo returns the angle from the point toward other. See Angle.
func (p *Point) AngleTo(other *Point) float64 {
	return p.Angle(other.X, other.Y)
}

// Distance returns the Euclidean distance from the point to (x, y).
func (p *Point) Distance(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}

// DistanceTo returns the Euclidean distance from the point to other.
func (p *Point) DistanceTo(other *Point) float64 {
	return p.Distance(other.X, other.Y)
}

// MidPoint returns a new point halfway between the point and (x, y).
func (p *Point) MidPoint(x, y float64) *Point {
	return &Point{X: (p.X + x) / 2, Y: (p.Y + y) / 2}
}

// MidPointTo returns a new point halfway between the point and other.
func (p *Point) MidPointTo(other *Point) *Point {
	return p.MidPoint(other.X, other.Y)
}

// Project moves the point dist units along the given heading, using the
// same degree convention as Angle.
func (p *Point) Project(angleDeg, dist float64) *Point {
	rad := angleDeg * math.Pi / 180
	p.X += dist * math.Cos(rad)
	p.Y -= dist * math.Sin(rad)
	return p
}
