package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/planar/plane"
)

func loadTestLevel(t *testing.T) *Level {
	t.Helper()
	level, err := Load(os.DirFS("testdata"), "level.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	t.Cleanup(level.Tiles.Release)
	return level
}

func TestLoadDimensions(t *testing.T) {
	level := loadTestLevel(t)

	if level.PixelWidth != 128 || level.PixelHeight != 96 {
		t.Errorf("pixel size = (%d, %d), want (128, 96)", level.PixelWidth, level.PixelHeight)
	}
	if level.Tiles.Cols() != 8 || level.Tiles.Rows() != 6 {
		t.Errorf("grid = (%d, %d), want (8, 6)", level.Tiles.Cols(), level.Tiles.Rows())
	}
}

func TestLoadTileFlags(t *testing.T) {
	level := loadTestLevel(t)
	tp := level.Tiles

	tests := []struct {
		name     string
		col, row int
		wantNil  bool
		solid    bool
		ground   bool
		coll     bool
		typ      string
	}{
		{"floor is solid", 0, 4, false, true, false, true, "wall"},
		{"platform is ground only", 3, 1, false, false, true, true, "platform"},
		{"decorative tile has no flags", 2, 3, false, false, false, false, ""},
		{"sensor collides without blocking", 5, 3, false, false, false, true, "sensor"},
		{"empty cell", 6, 0, true, false, false, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tile := tp.Tile(tc.col, tc.row)
			if (tile == nil) != tc.wantNil {
				t.Fatalf("Tile(%d, %d) = %v, wantNil=%v", tc.col, tc.row, tile, tc.wantNil)
			}
			if tile == nil {
				return
			}
			if tile.Solid != tc.solid || tile.Ground != tc.ground || tile.Collisions != tc.coll || tile.Type != tc.typ {
				t.Errorf("tile = %+v", *tile)
			}
		})
	}
}

func TestLoadSpawnPointsSorted(t *testing.T) {
	level := loadTestLevel(t)

	if len(level.SpawnPoints) != 2 {
		t.Fatalf("spawn points = %d, want 2", len(level.SpawnPoints))
	}
	if level.SpawnPoints[0].Index != 0 || level.SpawnPoints[0].X != 96 {
		t.Errorf("first spawn = %+v, want index 0 at x=96", level.SpawnPoints[0])
	}
	if level.SpawnPoints[1].Index != 1 {
		t.Errorf("second spawn = %+v, want index 1", level.SpawnPoints[1])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(os.DirFS("testdata"), "missing.tmx"); err == nil {
		t.Fatal("expected an error for a missing map")
	}
}

// End to end: a loaded level backs a sweep like a hand-built grid does.
func TestLoadedLevelBlocksSweep(t *testing.T) {
	level := loadTestLevel(t)

	sp := plane.NewSpritePlane()
	sp.LinkTilePlane(level.Tiles)

	// Fall from above the floor row (y 64..79) in a column clear of the
	// platform and sensor.
	hit := sp.MovePointY(20, 0, 200)
	if hit == nil || !hit.Blocked {
		t.Fatal("expected the floor to block")
	}
	if hit.CorrectedY != 63 {
		t.Errorf("CorrectedY = %v, want 63", hit.CorrectedY)
	}
	if hit.Target.Kind != plane.TargetTile || hit.Target.Type() != "wall" {
		t.Errorf("target = %+v, want the wall tile", hit.Target)
	}

	// Column 3 passes over the one-way platform at y 16..31 first.
	hit = sp.MovePointY(50, 0, 200)
	if hit == nil || !hit.Blocked || hit.CorrectedY != 15 {
		t.Fatalf("got %+v, want the platform to block at 15", hit)
	}
	if hit.Target.Type() != "platform" {
		t.Errorf("target type = %q, want platform", hit.Target.Type())
	}
}
