// Package plane implements the collision engine: sprite planes, tile
// planes, and the chunked sweep that moves points, lines, and sprites
// while detecting and correcting contact with solid or ground objects.
//
// The model is single-threaded: one simulation tick drives all moves in
// sequence, and no operation here blocks. Hosts that want to move sprites
// in parallel must add their own synchronization.
package plane

import (
	"math"

	"github.com/automoto/planar/geom"
)

// Tile is one fixed-size grid cell of a TilePlane. The zero value is a
// plain non-colliding tile.
type Tile struct {
	Collisions bool
	Solid      bool
	Ground     bool
	Type       string

	// Grid coordinates, assigned by TilePlane.SetTile.
	Col, Row int
}

// tilePlanes is the handle registry backing weak plane links. A
// SpritePlane holds only the handle of its linked tile plane; once the
// tile plane is released the handle resolves to nil and the link reads
// as absent.
var (
	tilePlaneSeq uint64
	tilePlanes   = map[uint64]*TilePlane{}
)

// TilePlane is a dense grid of tiles sharing one pixel coordinate space.
type TilePlane struct {
	id           uint64
	cols, rows   int
	tileW, tileH int
	tiles        []*Tile
}

// NewTilePlane creates a registered tile plane of cols x rows cells of
// tileW x tileH pixels. Panics on non-positive dimensions.
func NewTilePlane(cols, rows, tileW, tileH int) *TilePlane {
	if cols <= 0 || rows <= 0 || tileW <= 0 || tileH <= 0 {
		panic("planar: tile plane dimensions must be positive")
	}
	tilePlaneSeq++
	tp := &TilePlane{
		id:    tilePlaneSeq,
		cols:  cols,
		rows:  rows,
		tileW: tileW,
		tileH: tileH,
		tiles: make([]*Tile, cols*rows),
	}
	tilePlanes[tp.id] = tp
	return tp
}

// Release removes the plane from the link registry. Sprite planes still
// holding a link to it will treat the link as absent from now on.
func (tp *TilePlane) Release() {
	delete(tilePlanes, tp.id)
}

func lookupTilePlane(id uint64) *TilePlane {
	if id == 0 {
		return nil
	}
	return tilePlanes[id]
}

// Cols returns the number of grid columns.
func (tp *TilePlane) Cols() int { return tp.cols }

// Rows returns the number of grid rows.
func (tp *TilePlane) Rows() int { return tp.rows }

// TileWidth returns the cell width in pixels.
func (tp *TilePlane) TileWidth() int { return tp.tileW }

// TileHeight returns the cell height in pixels.
func (tp *TilePlane) TileHeight() int { return tp.tileH }

// PixelWidth returns the total plane width in pixels.
func (tp *TilePlane) PixelWidth() int { return tp.cols * tp.tileW }

// PixelHeight returns the total plane height in pixels.
func (tp *TilePlane) PixelHeight() int { return tp.rows * tp.tileH }

// SetTile places t at the given cell, overwriting any previous tile. A
// nil t clears the cell. Panics when the cell is outside the grid.
func (tp *TilePlane) SetTile(col, row int, t *Tile) {
	if col < 0 || col >= tp.cols || row < 0 || row >= tp.rows {
		panic("planar: SetTile outside grid")
	}
	if t != nil {
		t.Col = col
		t.Row = row
	}
	tp.tiles[row*tp.cols+col] = t
}

// Tile returns the tile at the given cell, or nil when the cell is empty
// or outside the grid.
func (tp *TilePlane) Tile(col, row int) *Tile {
	if col < 0 || col >= tp.cols || row < 0 || row >= tp.rows {
		return nil
	}
	return tp.tiles[row*tp.cols+col]
}

// TileAt returns the tile occupying the global pixel coordinate, or nil
// when the cell is empty or the coordinate is outside the grid.
func (tp *TilePlane) TileAt(globalX, globalY float64) *Tile {
	col := int(math.Floor(globalX / float64(tp.tileW)))
	row := int(math.Floor(globalY / float64(tp.tileH)))
	return tp.Tile(col, row)
}

// TileRect returns the pixel bounds of t within the plane.
func (tp *TilePlane) TileRect(t *Tile) *geom.Rect {
	return geom.NewRectSize(
		float64(t.Col*tp.tileW), float64(t.Row*tp.tileH),
		float64(tp.tileW), float64(tp.tileH),
	)
}
