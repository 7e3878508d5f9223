package plane

import (
	"math"

	"github.com/automoto/planar/geom"
)

// DefaultMinSpriteSize is the default sweep chunk size in pixels.
const DefaultMinSpriteSize = 16

// SpritePlane owns a collection of sprites sharing one coordinate space
// and implements the chunked-sweep move operations against them and,
// when linked, against one tile plane.
//
// Sweeps advance in increments no larger than the configured minimum
// sprite size and re-test for contact after each increment, so a fast
// mover cannot pass through an obstacle at least that small in one
// untested jump. Each move is a bounded synchronous computation of at
// most ceil(|delta|/minSpriteSize) increments.
type SpritePlane struct {
	minSpriteSize float64
	sprites       []*Sprite
	tilePlaneID   uint64
}

// NewSpritePlane returns an empty plane with the default chunk size.
func NewSpritePlane() *SpritePlane {
	return &SpritePlane{minSpriteSize: DefaultMinSpriteSize}
}

// SetMinSpriteSize sets the sweep chunk size in pixels. It must not
// exceed the smallest collidable object's size, or thin obstacles can be
// stepped over between tests. Panics on a non-positive size.
func (p *SpritePlane) SetMinSpriteSize(px float64) {
	if px <= 0 {
		panic("planar: min sprite size must be positive")
	}
	p.minSpriteSize = px
}

// MinSpriteSize returns the current sweep chunk size.
func (p *SpritePlane) MinSpriteSize() float64 { return p.minSpriteSize }

// LinkTilePlane associates tp with this plane for tile collision. The
// link is non-owning and held by handle: releasing the tile plane makes
// the link read as absent. Linking nil unlinks. Both planes must manage
// the same pixel coordinate space.
func (p *SpritePlane) LinkTilePlane(tp *TilePlane) {
	if tp == nil {
		p.tilePlaneID = 0
		return
	}
	p.tilePlaneID = tp.id
}

// TilePlane returns the linked tile plane, or nil when unlinked or the
// linked plane has been released.
func (p *SpritePlane) TilePlane() *TilePlane {
	return lookupTilePlane(p.tilePlaneID)
}

// AddSprite places s on the plane and returns it.
func (p *SpritePlane) AddSprite(s *Sprite) *Sprite {
	s.plane = p
	s.active = true
	p.sprites = append(p.sprites, s)
	return s
}

// RemoveSprite takes s off the plane. Queries and sweeps never see
// removed sprites.
func (p *SpritePlane) RemoveSprite(s *Sprite) {
	for i, cur := range p.sprites {
		if cur == s {
			p.sprites = append(p.sprites[:i], p.sprites[i+1:]...)
			s.active = false
			s.plane = nil
			return
		}
	}
}

// FindSprites returns the active sprites matching q, preserving the
// order they were added in. A nil query returns all active sprites.
func (p *SpritePlane) FindSprites(q *Query) []*Sprite {
	var out []*Sprite
	for _, s := range p.sprites {
		if q.matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// SpriteAt returns the first active sprite whose bounds contain the
// global point, or nil. This is a linear scan over the whole collection;
// callers doing this per frame should cache the result instead.
func (p *SpritePlane) SpriteAt(x, y float64) *Sprite {
	for _, s := range p.sprites {
		if s.Rect().Contains(x, y) {
			return s
		}
	}
	return nil
}

// MovePointX sweeps the point (x, y) horizontally by delta. Returns nil
// when nothing was contacted.
func (p *SpritePlane) MovePointX(x, y, delta float64) *Hit {
	return p.sweep(axisX, x, y, y, delta, nil)
}

// MovePointY sweeps the point (x, y) vertically by delta.
func (p *SpritePlane) MovePointY(x, y, delta float64) *Hit {
	return p.sweep(axisY, y, x, x, delta, nil)
}

// MoveLineX sweeps the vertical segment at xpos spanning [top, bottom]
// horizontally by delta. The segment endpoints are inclusive pixel
// coordinates.
func (p *SpritePlane) MoveLineX(xpos, top, bottom, delta float64) *Hit {
	return p.sweep(axisX, xpos, top, bottom, delta, nil)
}

// MoveLineY sweeps the horizontal segment at ypos spanning [left, right]
// vertically by delta.
func (p *SpritePlane) MoveLineY(ypos, left, right, delta float64) *Hit {
	return p.sweep(axisY, ypos, left, right, delta, nil)
}

// MoveSprite sweeps s horizontally by dx and then vertically by dy,
// writes the resulting position (corrected on a blocking contact, the
// full delta otherwise) back to s, and returns the aggregated hit. The
// hit's corrected coordinates are s's final origin. Returns nil when
// neither axis contacted anything.
func (p *SpritePlane) MoveSprite(s *Sprite, dx, dy float64) *Hit {
	var hx, hy *Hit

	if dx != 0 {
		lead := s.X
		if dx > 0 {
			lead = s.X + s.Width - 1
		}
		hx = p.sweep(axisX, lead, s.Y, s.Y+s.Height-1, dx, s)
		if hx != nil && hx.Blocked {
			if dx > 0 {
				s.X = hx.CorrectedX - (s.Width - 1)
			} else {
				s.X = hx.CorrectedX
			}
		} else {
			s.X += dx
		}
	}

	if dy != 0 {
		lead := s.Y
		if dy > 0 {
			lead = s.Y + s.Height - 1
		}
		hy = p.sweep(axisY, lead, s.X, s.X+s.Width-1, dy, s)
		if hy != nil && hy.Blocked {
			if dy > 0 {
				s.Y = hy.CorrectedY - (s.Height - 1)
			} else {
				s.Y = hy.CorrectedY
			}
		} else {
			s.Y += dy
		}
	}

	return mergeAxisHits(hx, hy, s)
}

func mergeAxisHits(hx, hy *Hit, s *Sprite) *Hit {
	if hx == nil && hy == nil {
		return nil
	}

	merged := &Hit{CorrectedX: s.X, CorrectedY: s.Y}
	switch {
	case hx != nil && hx.Blocked:
		merged.Target = hx.Target
		merged.Blocked = true
	case hy != nil && hy.Blocked:
		merged.Target = hy.Target
		merged.Blocked = true
	case hx != nil:
		merged.Target = hx.Target
	default:
		merged.Target = hy.Target
	}

	seen := map[any]struct{}{}
	for _, h := range []*Hit{hx, hy} {
		if h == nil {
			continue
		}
		for _, t := range h.Events {
			if _, ok := seen[t.key()]; ok {
				continue
			}
			seen[t.key()] = struct{}{}
			merged.Events = append(merged.Events, t)
		}
	}
	return merged
}

type axis int

const (
	axisX axis = iota
	axisY
)

// candidate is one entity the swept shape crossed during an increment.
type candidate struct {
	target Target
	rect   *geom.Rect
	// near and far bound the entity along the travel axis in the
	// direction of movement: near is the edge the mover enters through.
	near, far float64
	dist      float64
}

// sweep advances a point (c0 == c1) or segment along one axis in chunks,
// testing the interval crossed during each increment against tiles and
// sprites. It stops at the first blocking contact and reports the
// position adjacent to the blocker's boundary; pass-through contacts are
// collected into Events without stopping.
func (p *SpritePlane) sweep(ax axis, pos, c0, c1, delta float64, mover *Sprite) *Hit {
	if delta == 0 {
		return nil
	}
	if c1 < c0 {
		c0, c1 = c1, c0
	}

	dir := 1.0
	if delta < 0 {
		dir = -1
	}
	remaining := math.Abs(delta)
	prev := pos

	var events []Target
	seen := map[any]struct{}{}
	record := func(t Target) {
		if _, ok := seen[t.key()]; ok {
			return
		}
		seen[t.key()] = struct{}{}
		events = append(events, t)
	}

	for remaining > 0 {
		step := math.Min(p.minSpriteSize, remaining)
		remaining -= step
		next := prev + dir*step

		cands := p.collect(ax, prev, next, c0, c1, dir, mover)

		// Nearest blocking boundary along the travel direction wins;
		// a tie keeps the first found in scan order (tiles before
		// sprites, sprites in collection order).
		var primary *candidate
		for i := range cands {
			c := &cands[i]
			if !blocks(ax, dir, prev, c) {
				continue
			}
			if primary == nil || c.dist < primary.dist {
				primary = c
			}
		}

		if primary == nil {
			for _, c := range cands {
				record(c.target)
			}
			prev = next
			continue
		}

		// Only contacts reached before the stop boundary actually
		// happened this tick.
		for _, c := range cands {
			if c.dist <= primary.dist {
				record(c.target)
			}
		}

		corrected := primary.near - dir
		if dir < 0 {
			// Right/Bottom are exclusive, so the first position outside
			// is the boundary itself.
			corrected = primary.near
		}
		hit := &Hit{Target: primary.target, Blocked: true, Events: events}
		if ax == axisX {
			hit.CorrectedX = corrected
			hit.CorrectedY = c0
		} else {
			hit.CorrectedY = corrected
			hit.CorrectedX = c0
		}
		return hit
	}

	if len(events) == 0 {
		return nil
	}
	hit := &Hit{Target: events[0], Events: events}
	if ax == axisX {
		hit.CorrectedX = pos + delta
		hit.CorrectedY = c0
	} else {
		hit.CorrectedY = pos + delta
		hit.CorrectedX = c0
	}
	return hit
}

// blocks reports whether c stops movement in this direction. Solid
// blocks everywhere; ground blocks only a downward mover entering
// through the top edge (the lead position before the increment was still
// above it).
func blocks(ax axis, dir, prev float64, c *candidate) bool {
	if c.target.Solid() {
		return true
	}
	if c.target.Ground() {
		return ax == axisY && dir > 0 && prev < c.rect.Top
	}
	return false
}

// collect gathers the entities whose bounds the swept shape crossed
// while moving from prev to next, tiles first. The cross extent
// [c0, c1] is inclusive pixel coordinates.
func (p *SpritePlane) collect(ax axis, prev, next, c0, c1, dir float64, mover *Sprite) []candidate {
	lo, hi := prev, next
	if lo > hi {
		lo, hi = hi, lo
	}

	var cands []candidate

	add := func(t Target, r *geom.Rect) {
		tb0, tb1 := r.Left, r.Right
		if ax == axisY {
			tb0, tb1 = r.Top, r.Bottom
		}
		var entered bool
		var near, far, dist float64
		if dir > 0 {
			entered = next >= tb0 && prev < tb1
			near, far = tb0, tb1
			dist = tb0 - prev
		} else {
			entered = next < tb1 && prev >= tb0
			near, far = tb1, tb0
			dist = prev - tb1
		}
		if !entered {
			return
		}
		cands = append(cands, candidate{target: t, rect: r, near: near, far: far, dist: dist})
	}

	if tp := lookupTilePlane(p.tilePlaneID); tp != nil {
		tw, th := float64(tp.tileW), float64(tp.tileH)
		var col0, col1, row0, row1 int
		if ax == axisX {
			col0, col1 = cellRange(lo, hi, tw)
			row0, row1 = cellRange(c0, c1, th)
		} else {
			col0, col1 = cellRange(c0, c1, tw)
			row0, row1 = cellRange(lo, hi, th)
		}
		for row := row0; row <= row1; row++ {
			for col := col0; col <= col1; col++ {
				t := tp.Tile(col, row)
				if t == nil || !t.Collisions {
					continue
				}
				add(Target{Kind: TargetTile, Tile: t}, tp.TileRect(t))
			}
		}
	}

	for _, s := range p.sprites {
		if s == mover || !s.Collisions {
			continue
		}
		r := s.Rect()
		// Cross-axis overlap with the inclusive extent.
		cb0, cb1 := r.Top, r.Bottom
		if ax == axisY {
			cb0, cb1 = r.Left, r.Right
		}
		if cb0 > c1 || cb1 <= c0 {
			continue
		}
		add(Target{Kind: TargetSprite, Sprite: s}, r)
	}

	return cands
}

// cellRange returns the grid cells covered by the inclusive pixel span
// [lo, hi]. Out-of-grid cells are handled by the nil Tile lookup.
func cellRange(lo, hi, size float64) (int, int) {
	return int(math.Floor(lo / size)), int(math.Floor(hi / size))
}
