// Package leveldata builds collision tile planes from Tiled TMX maps.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS, and has no
// dependency on the render side of the engine.
package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/planar/plane"
)

// Level is the collision-relevant content of one TMX map: a ready tile
// plane plus spawn points.
type Level struct {
	Tiles       *plane.TilePlane
	SpawnPoints []SpawnPoint
	PixelWidth  int
	PixelHeight int
}

// SpawnPoint is a placement marker from the map's Spawn object group.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Load parses a TMX file and builds a Level. Every non-empty cell of
// every tile layer becomes a plane.Tile; the tileset tile properties
// "solid", "ground", "collisions" and "type" map onto the tile flags,
// with collisions implied by solid or ground. Spawn points come from an
// object group named "Spawn", sorted by their spawnIndex property.
//
// The returned tile plane is registered for linking; the caller owns it
// and should Release it when tearing the level down.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tp := plane.NewTilePlane(levelMap.Width, levelMap.Height, levelMap.TileWidth, levelMap.TileHeight)
	level := &Level{
		Tiles:       tp,
		PixelWidth:  levelMap.Width * levelMap.TileWidth,
		PixelHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				mapTile := layer.Tiles[y*levelMap.Width+x]
				if mapTile.IsNil() {
					continue
				}
				tp.SetTile(x, y, buildTile(mapTile))
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Spawn" {
			continue
		}
		for _, o := range og.Objects {
			level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
	})

	return level, nil
}

func buildTile(mapTile *tiled.LayerTile) *plane.Tile {
	t := &plane.Tile{}
	tilesetTile, err := mapTile.Tileset.GetTilesetTile(mapTile.ID)
	if err != nil {
		// No per-tile metadata in the tileset: a plain decorative tile.
		return t
	}

	props := tilesetTile.Properties
	t.Solid = props.GetBool("solid")
	t.Ground = props.GetBool("ground")
	t.Collisions = t.Solid || t.Ground || props.GetBool("collisions")
	t.Type = props.GetString("type")
	return t
}
