package plane

// TargetKind discriminates the two entity kinds a sweep can contact.
type TargetKind int

const (
	TargetSprite TargetKind = iota
	TargetTile
)

// Target is a tagged reference to a contacted entity: exactly one of
// Sprite and Tile is non-nil, selected by Kind.
type Target struct {
	Kind   TargetKind
	Sprite *Sprite
	Tile   *Tile
}

// Solid reports the target's solid flag.
func (t Target) Solid() bool {
	if t.Kind == TargetTile {
		return t.Tile.Solid
	}
	return t.Sprite.Solid
}

// Ground reports the target's ground flag.
func (t Target) Ground() bool {
	if t.Kind == TargetTile {
		return t.Tile.Ground
	}
	return t.Sprite.Ground
}

// Type returns the target's type label.
func (t Target) Type() string {
	if t.Kind == TargetTile {
		return t.Tile.Type
	}
	return t.Sprite.Type
}

func (t Target) key() any {
	if t.Kind == TargetTile {
		return t.Tile
	}
	return t.Sprite
}

// Hit is the outcome of a move that contacted at least one entity. It is
// produced fresh per call and owned by the caller; no reference inside it
// survives past the current tick (sprites may be removed between calls).
type Hit struct {
	// Target is the primary contact: the blocking entity when Blocked,
	// otherwise the first entity contacted.
	Target Target

	// CorrectedX and CorrectedY are where the moved shape ends up: just
	// outside the blocking boundary when Blocked, the full destination
	// otherwise. Sprite moves report the sprite's final origin here.
	CorrectedX float64
	CorrectedY float64

	// Blocked reports whether movement was stopped short of the full
	// delta by a solid or ground target.
	Blocked bool

	// Events lists every entity contacted during the sweep, in order of
	// discovery, including non-blocking pass-through contacts.
	Events []Target
}
