package geom

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Rect is a mutable axis-aligned rectangle. Right and Bottom are
// exclusive: the rect covers x in [Left, Right) and y in [Top, Bottom).
// A rect is valid only when Right > Left and Bottom > Top; derived
// operations are unspecified on invalid rects, so callers that can
// receive one (notably after Intersect) must check Valid first.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect returns the rect (l, t, r, b).
func NewRect(l, t, r, b float64) *Rect {
	return &Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// NewRectSize returns the rect at (x, y) with the given width and height.
func NewRectSize(x, y, w, h float64) *Rect {
	return &Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Valid reports whether the rect has positive width and height.
func (r *Rect) Valid() bool {
	return r.Right > r.Left && r.Bottom > r.Top
}

// Set assigns all four edges.
func (r *Rect) Set(l, t, rt, b float64) *Rect {
	r.Left, r.Top, r.Right, r.Bottom = l, t, rt, b
	return r
}

// SetRect copies the edges of other.
func (r *Rect) SetRect(other *Rect) *Rect {
	return r.Set(other.Left, other.Top, other.Right, other.Bottom)
}

// Offset translates the rect by (dx, dy).
func (r *Rect) Offset(dx, dy float64) *Rect {
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
	return r
}

// OffsetPoint translates the rect by the coordinates of p.
func (r *Rect) OffsetPoint(p *Point) *Rect {
	return r.Offset(p.X, p.Y)
}

// MoveTo translates the rect so its top-left corner lands on (x, y).
func (r *Rect) MoveTo(x, y float64) *Rect {
	return r.Offset(x-r.Left, y-r.Top)
}

// MoveToPoint translates the rect so its top-left corner lands on p.
func (r *Rect) MoveToPoint(p *Point) *Rect {
	return r.MoveTo(p.X, p.Y)
}

// MoveToRect translates the rect so its top-left corner matches other's.
func (r *Rect) MoveToRect(other *Rect) *Rect {
	return r.MoveTo(other.Left, other.Top)
}

// Width returns Right - Left.
func (r *Rect) Width() float64 {
	return r.Right - r.Left
}

// SetWidth adjusts Right so the rect is w wide.
func (r *Rect) SetWidth(w float64) *Rect {
	r.Right = r.Left + w
	return r
}

// Height returns Bottom - Top.
func (r *Rect) Height() float64 {
	return r.Bottom - r.Top
}

// SetHeight adjusts Bottom so the rect is h tall.
func (r *Rect) SetHeight(h float64) *Rect {
	r.Bottom = r.Top + h
	return r
}

// Inset shrinks the rect by dx on the left and right edges and dy on the
// top and bottom edges. Negative values expand.
func (r *Rect) Inset(dx, dy float64) *Rect {
	r.Left += dx
	r.Right -= dx
	r.Top += dy
	r.Bottom -= dy
	return r
}

// Clone returns an independent copy.
func (r *Rect) Clone() *Rect {
	c := *r
	return &c
}

// TopLeft returns the top-left corner as a new point.
func (r *Rect) TopLeft() *Point { return &Point{X: r.Left, Y: r.Top} }

// TopRight returns the top-right corner as a new point.
func (r *Rect) TopRight() *Point { return &Point{X: r.Right, Y: r.Top} }

// BottomLeft returns the bottom-left corner as a new point.
func (r *Rect) BottomLeft() *Point { return &Point{X: r.Left, Y: r.Bottom} }

// BottomRight returns the bottom-right corner as a new point.
func (r *Rect) BottomRight() *Point { return &Point{X: r.Right, Y: r.Bottom} }

// Center returns the center as a new point.
func (r *Rect) Center() *Point { return &Point{X: r.CenterX(), Y: r.CenterY()} }

// CenterX returns the horizontal center.
func (r *Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center.
func (r *Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Contains reports whether (x, y) lies inside the rect. The right and
// bottom edges are exclusive.
func (r *Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// ContainsPoint reports whether p lies inside the rect.
func (r *Rect) ContainsPoint(p *Point) bool {
	return r.Contains(p.X, p.Y)
}

// Overlaps reports whether the two rects share any area. Rects that only
// touch edges do not overlap.
func (r *Rect) Overlaps(other *Rect) bool {
	return r.Left < other.Right && r.Right > other.Left &&
		r.Top < other.Bottom && r.Bottom > other.Top
}

// Union grows the rect to the smallest rect containing both it and other.
func (r *Rect) Union(other *Rect) *Rect {
	r.Left = math.Min(r.Left, other.Left)
	r.Top = math.Min(r.Top, other.Top)
	r.Right = math.Max(r.Right, other.Right)
	r.Bottom = math.Max(r.Bottom, other.Bottom)
	return r
}

// Intersect shrinks the rect to the region shared with other. When the
// rects do not overlap the result is invalid rather than an error; check
// Valid afterward.
func (r *Rect) Intersect(other *Rect) *Rect {
	r.Left = math.Max(r.Left, other.Left)
	r.Top = math.Max(r.Top, other.Top)
	r.Right = math.Min(r.Right, other.Right)
	r.Bottom = math.Min(r.Bottom, other.Bottom)
	return r
}

// Morph moves each edge linearly toward target. fraction 0 leaves the
// rect unchanged, 1 makes it equal to target. A single call places the
// rect at one position along the path; animating is the caller's loop.
func (r *Rect) Morph(target *Rect, fraction float64) *Rect {
	return r.MorphEase(target, fraction, ease.Linear)
}

// MorphEase is Morph with an easing function applied to the edge
// interpolation, e.g. ease.OutQuad from tanema/gween.
func (r *Rect) MorphEase(target *Rect, fraction float64, fn ease.TweenFunc) *Rect {
	f := float32(fraction)
	r.Left = float64(fn(f, float32(r.Left), float32(target.Left-r.Left), 1))
	r.Top = float64(fn(f, float32(r.Top), float32(target.Top-r.Top), 1))
	r.Right = float64(fn(f, float32(r.Right), float32(target.Right-r.Right), 1))
	r.Bottom = float64(fn(f, float32(r.Bottom), float32(target.Bottom-r.Bottom), 1))
	return r
}
