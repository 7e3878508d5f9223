package plane

import "testing"

// solidTilePlane builds a 10x10 grid of 20px tiles with one solid tile
// covering [40,40)..[60,60).
func solidTilePlane(t *testing.T) *TilePlane {
	t.Helper()
	tp := NewTilePlane(10, 10, 20, 20)
	t.Cleanup(tp.Release)
	tp.SetTile(2, 2, &Tile{Collisions: true, Solid: true, Type: "wall"})
	return tp
}

func newLinkedPlane(t *testing.T) (*SpritePlane, *TilePlane) {
	t.Helper()
	tp := solidTilePlane(t)
	sp := NewSpritePlane()
	sp.LinkTilePlane(tp)
	return sp, tp
}

func TestMovePointXStopsAtSolidTile(t *testing.T) {
	sp, _ := newLinkedPlane(t)

	hit := sp.MovePointX(0, 50, 100)
	if hit == nil {
		t.Fatal("expected a hit against the solid tile")
	}
	if !hit.Blocked {
		t.Error("solid tile must block")
	}
	if hit.Target.Kind != TargetTile {
		t.Errorf("target kind = %v, want tile", hit.Target.Kind)
	}
	if hit.CorrectedX != 39 {
		t.Errorf("CorrectedX = %v, want 39 (one unit before the tile's left edge)", hit.CorrectedX)
	}
	if hit.CorrectedY != 50 {
		t.Errorf("CorrectedY = %v, want 50", hit.CorrectedY)
	}
}

func TestMovePointXLeftwardStopsAtRightEdge(t *testing.T) {
	sp, _ := newLinkedPlane(t)

	hit := sp.MovePointX(100, 50, -100)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected a blocking hit moving left")
	}
	if hit.CorrectedX != 60 {
		t.Errorf("CorrectedX = %v, want 60 (first position outside the exclusive right edge)", hit.CorrectedX)
	}
}

func TestMovePointMissesOffRow(t *testing.T) {
	sp, _ := newLinkedPlane(t)

	// y=10 passes above the tile at rows 40..59.
	if hit := sp.MovePointX(0, 10, 100); hit != nil {
		t.Errorf("expected no hit, got %+v", *hit)
	}
}

func TestMovePointZeroDelta(t *testing.T) {
	sp, _ := newLinkedPlane(t)
	if hit := sp.MovePointX(39, 50, 0); hit != nil {
		t.Errorf("zero delta must return nil, got %+v", *hit)
	}
}

func TestNoTunnelingThroughThinObstacle(t *testing.T) {
	sp := NewSpritePlane()
	// 1-unit-wide solid obstacle; chunk size 16 stays far larger.
	sp.AddSprite(&Sprite{X: 40, Y: 0, Width: 1, Height: 100, Collisions: true, Solid: true})

	hit := sp.MovePointX(0, 50, 1000)
	if hit == nil || !hit.Blocked {
		t.Fatal("sweep must not tunnel through a 1-unit obstacle")
	}
	if hit.Target.Kind != TargetSprite {
		t.Errorf("target kind = %v, want sprite", hit.Target.Kind)
	}
	if hit.CorrectedX != 39 {
		t.Errorf("CorrectedX = %v, want 39", hit.CorrectedX)
	}
}

func TestGroundBlocksOnlyFromAbove(t *testing.T) {
	tp := NewTilePlane(10, 10, 20, 20)
	defer tp.Release()
	tp.SetTile(2, 2, &Tile{Collisions: true, Ground: true, Type: "platform"})

	sp := NewSpritePlane()
	sp.LinkTilePlane(tp)

	t.Run("from above blocks", func(t *testing.T) {
		hit := sp.MovePointY(50, 0, 100)
		if hit == nil || !hit.Blocked {
			t.Fatal("downward entry through the top edge must block")
		}
		if hit.CorrectedY != 39 {
			t.Errorf("CorrectedY = %v, want 39", hit.CorrectedY)
		}
	})

	t.Run("from below passes", func(t *testing.T) {
		hit := sp.MovePointY(50, 100, -80)
		if hit != nil && hit.Blocked {
			t.Fatal("upward travel into the bottom edge must not block")
		}
		if hit != nil {
			if hit.CorrectedY != 20 {
				t.Errorf("pass-through CorrectedY = %v, want full destination 20", hit.CorrectedY)
			}
			if len(hit.Events) != 1 || hit.Events[0].Kind != TargetTile {
				t.Errorf("expected one non-blocking tile event, got %+v", hit.Events)
			}
		}
	})

	t.Run("sideways passes", func(t *testing.T) {
		hit := sp.MovePointX(0, 50, 100)
		if hit != nil && hit.Blocked {
			t.Fatal("horizontal travel through ground must not block")
		}
	})
}

func TestPassThroughEventsThenBlock(t *testing.T) {
	sp, _ := newLinkedPlane(t)
	pickup := sp.AddSprite(&Sprite{X: 20, Y: 45, Width: 10, Height: 10, Collisions: true, Type: "Pickup"})

	hit := sp.MovePointX(0, 50, 100)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected a blocking hit past the pickup")
	}
	if hit.Target.Kind != TargetTile {
		t.Errorf("primary target kind = %v, want the blocking tile", hit.Target.Kind)
	}
	if len(hit.Events) != 2 {
		t.Fatalf("events = %d, want 2 (pickup then wall)", len(hit.Events))
	}
	if hit.Events[0].Kind != TargetSprite || hit.Events[0].Sprite != pickup {
		t.Error("first event must be the pickup, in discovery order")
	}
	if hit.Events[1].Kind != TargetTile {
		t.Error("second event must be the wall tile")
	}
}

func TestEventsBeyondBlockerNotReported(t *testing.T) {
	sp, _ := newLinkedPlane(t)
	// Pickup sits behind the wall; the mover never reaches it.
	sp.AddSprite(&Sprite{X: 70, Y: 45, Width: 10, Height: 10, Collisions: true, Type: "Pickup"})

	hit := sp.MovePointX(0, 50, 100)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected a blocking hit")
	}
	if len(hit.Events) != 1 {
		t.Errorf("events = %+v, want only the wall", hit.Events)
	}
}

func TestTieBreakNearestBoundary(t *testing.T) {
	sp, _ := newLinkedPlane(t)
	// Solid sprite overlapping the tile but with a farther left edge.
	sp.AddSprite(&Sprite{X: 45, Y: 40, Width: 20, Height: 20, Collisions: true, Solid: true})

	hit := sp.MovePointX(0, 50, 100)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected a blocking hit")
	}
	if hit.Target.Kind != TargetTile {
		t.Error("nearest boundary along travel (the tile at 40) must win over the sprite at 45")
	}
	if hit.CorrectedX != 39 {
		t.Errorf("CorrectedX = %v, want 39", hit.CorrectedX)
	}
}

func TestTieBreakScanOrderOnEqualBoundary(t *testing.T) {
	sp := NewSpritePlane()
	first := sp.AddSprite(&Sprite{X: 40, Y: 40, Width: 20, Height: 20, Collisions: true, Solid: true})
	sp.AddSprite(&Sprite{X: 40, Y: 45, Width: 20, Height: 20, Collisions: true, Solid: true})

	hit := sp.MovePointX(0, 50, 100)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected a blocking hit")
	}
	if hit.Target.Sprite != first {
		t.Error("equal boundaries must keep the first sprite in collection order")
	}
}

func TestSpritesWithoutCollisionsIgnored(t *testing.T) {
	sp := NewSpritePlane()
	sp.AddSprite(&Sprite{X: 40, Y: 0, Width: 20, Height: 100, Solid: true}) // Collisions false

	if hit := sp.MovePointX(0, 50, 100); hit != nil {
		t.Errorf("sprite with collisions disabled must be invisible to sweeps, got %+v", *hit)
	}
}

func TestMoveLineX(t *testing.T) {
	sp, _ := newLinkedPlane(t)

	t.Run("line spanning tile row hits", func(t *testing.T) {
		hit := sp.MoveLineX(0, 30, 70, 100)
		if hit == nil || !hit.Blocked || hit.CorrectedX != 39 {
			t.Fatalf("got %+v, want block at 39", hit)
		}
	})

	t.Run("line above tile misses", func(t *testing.T) {
		if hit := sp.MoveLineX(0, 0, 30, 100); hit != nil {
			t.Fatalf("got %+v, want nil", *hit)
		}
	})
}

func TestMoveLineY(t *testing.T) {
	sp, _ := newLinkedPlane(t)

	hit := sp.MoveLineY(0, 45, 55, 100)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected a blocking hit")
	}
	if hit.CorrectedY != 39 {
		t.Errorf("CorrectedY = %v, want 39", hit.CorrectedY)
	}
}

func TestMoveSpriteLandsOnFloor(t *testing.T) {
	tp := NewTilePlane(10, 10, 20, 20)
	defer tp.Release()
	// Solid floor row at y 80..99.
	for col := 0; col < 10; col++ {
		tp.SetTile(col, 4, &Tile{Collisions: true, Solid: true, Type: "floor"})
	}

	sp := NewSpritePlane()
	sp.LinkTilePlane(tp)
	s := sp.AddSprite(&Sprite{X: 50, Y: 0, Width: 16, Height: 16, Collisions: true})

	hit := sp.MoveSprite(s, 0, 100)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected the floor to block the fall")
	}
	if s.Y != 64 {
		t.Errorf("s.Y = %v, want 64 (bottom edge resting at 79, adjacent to the floor)", s.Y)
	}
	if hit.CorrectedY != s.Y {
		t.Errorf("CorrectedY = %v, want the sprite's final origin %v", hit.CorrectedY, s.Y)
	}
	if s.X != 50 {
		t.Errorf("s.X = %v, want unchanged 50", s.X)
	}
}

func TestMoveSpriteUsesOwnSpeeds(t *testing.T) {
	sp, _ := newLinkedPlane(t)
	s := sp.AddSprite(&Sprite{X: 0, Y: 44, Width: 10, Height: 10, Collisions: true, SpeedX: 200})

	hit := s.Move()
	if hit == nil || !hit.Blocked {
		t.Fatal("expected the wall to block")
	}
	// Right edge must rest at 39, adjacent to the tile at 40.
	if s.X != 30 {
		t.Errorf("s.X = %v, want 30", s.X)
	}
}

func TestMoveSpriteBothAxes(t *testing.T) {
	tp := NewTilePlane(10, 10, 20, 20)
	defer tp.Release()
	for col := 0; col < 10; col++ {
		tp.SetTile(col, 4, &Tile{Collisions: true, Solid: true, Type: "floor"})
	}

	sp := NewSpritePlane()
	sp.LinkTilePlane(tp)
	s := sp.AddSprite(&Sprite{X: 10, Y: 40, Width: 16, Height: 16, Collisions: true})

	// Free horizontally, blocked vertically.
	hit := sp.MoveSprite(s, 30, 100)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected a vertical block")
	}
	if s.X != 40 {
		t.Errorf("s.X = %v, want full horizontal move to 40", s.X)
	}
	if s.Y != 64 {
		t.Errorf("s.Y = %v, want 64", s.Y)
	}
}

func TestMoveSpriteExcludesItself(t *testing.T) {
	sp := NewSpritePlane()
	s := sp.AddSprite(&Sprite{X: 0, Y: 0, Width: 16, Height: 16, Collisions: true, Solid: true})

	if hit := sp.MoveSprite(s, 5, 0); hit != nil {
		t.Errorf("a sprite must not collide with itself, got %+v", *hit)
	}
}

func TestMoveSpritePassThroughEvents(t *testing.T) {
	sp := NewSpritePlane()
	s := sp.AddSprite(&Sprite{X: 0, Y: 0, Width: 10, Height: 10, Collisions: true})
	coin := sp.AddSprite(&Sprite{X: 30, Y: 0, Width: 10, Height: 10, Collisions: true, Type: "Coin"})

	hit := sp.MoveSprite(s, 60, 0)
	if hit == nil {
		t.Fatal("expected a non-blocking hit for the coin")
	}
	if hit.Blocked {
		t.Error("coin is not solid, move must not be blocked")
	}
	if s.X != 60 {
		t.Errorf("s.X = %v, want full move to 60", s.X)
	}
	if len(hit.Events) != 1 || hit.Events[0].Sprite != coin {
		t.Errorf("events = %+v, want just the coin", hit.Events)
	}
}

func TestRestingAgainstWallStaysPut(t *testing.T) {
	sp, _ := newLinkedPlane(t)

	// Already adjacent at 39; pushing further right must keep 39.
	hit := sp.MovePointX(39, 50, 10)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected an immediate block")
	}
	if hit.CorrectedX != 39 {
		t.Errorf("CorrectedX = %v, want 39", hit.CorrectedX)
	}
}

func TestLinkIsWeak(t *testing.T) {
	tp := solidTilePlane(t)
	sp := NewSpritePlane()
	sp.LinkTilePlane(tp)

	if sp.TilePlane() != tp {
		t.Fatal("link must resolve while the tile plane is alive")
	}

	tp.Release()
	if sp.TilePlane() != nil {
		t.Fatal("released tile plane must read as absent")
	}
	if hit := sp.MovePointX(0, 50, 100); hit != nil {
		t.Errorf("sweep after release must see no tiles, got %+v", *hit)
	}

	sp.LinkTilePlane(nil)
	if sp.TilePlane() != nil {
		t.Error("explicit unlink must clear the link")
	}
}

func TestSetMinSpriteSizePanicsOnNonPositive(t *testing.T) {
	sp := NewSpritePlane()
	for _, px := range []float64{0, -4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetMinSpriteSize(%v) must panic", px)
				}
			}()
			sp.SetMinSpriteSize(px)
		}()
	}
}

func TestSmallerChunkSizeStillCorrects(t *testing.T) {
	sp, _ := newLinkedPlane(t)
	sp.SetMinSpriteSize(4)

	hit := sp.MovePointX(0, 50, 100)
	if hit == nil || hit.CorrectedX != 39 {
		t.Fatalf("got %+v, want block at 39", hit)
	}
}

func TestFindSprites(t *testing.T) {
	sp := NewSpritePlane()
	a := sp.AddSprite(&Sprite{Type: "Enemy", Collisions: true})
	b := sp.AddSprite(&Sprite{Type: "Coin", Collisions: true})
	c := sp.AddSprite(&Sprite{Type: "Enemy"})

	t.Run("nil query returns all in order", func(t *testing.T) {
		got := sp.FindSprites(nil)
		if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
			t.Errorf("got %v", got)
		}
	})

	t.Run("type filter preserves order", func(t *testing.T) {
		got := sp.FindSprites(&Query{Type: "Enemy"})
		if len(got) != 2 || got[0] != a || got[1] != c {
			t.Errorf("got %v", got)
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		got := sp.FindSprites(&Query{Type: "Enemy", Collisions: Flag(true)})
		if len(got) != 1 || got[0] != a {
			t.Errorf("got %v", got)
		}
	})

	t.Run("removed sprites excluded", func(t *testing.T) {
		sp.RemoveSprite(a)
		got := sp.FindSprites(&Query{Type: "Enemy"})
		if len(got) != 1 || got[0] != c {
			t.Errorf("got %v", got)
		}
		if a.Active() {
			t.Error("removed sprite must be inactive")
		}
	})
}

func TestSpriteAt(t *testing.T) {
	sp := NewSpritePlane()
	s := sp.AddSprite(&Sprite{X: 10, Y: 10, Width: 20, Height: 20})

	if got := sp.SpriteAt(15, 15); got != s {
		t.Errorf("SpriteAt inside = %v, want the sprite", got)
	}
	if got := sp.SpriteAt(30, 30); got != nil {
		t.Error("SpriteAt on the exclusive corner must miss")
	}
	if got := sp.SpriteAt(5, 5); got != nil {
		t.Error("SpriteAt outside must miss")
	}
}
