package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group and property names read from TMX files.
const (
	CollisionLayer   = "collision"
	SpawnGroup       = "Spawn"
	PlatformsGroup   = "Platforms"
	FinishLineGroup  = "FinishLine"
	TileKindProperty = "kind"
	TileKindHazard   = "hazard"
)

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := NewLevel(strings.TrimSuffix(path.Base(tmxPath), ".tmx"), levelMap.Width, levelMap.Height)
	level.TileWidth = levelMap.TileWidth
	level.TileHeight = levelMap.TileHeight

	layer := collisionLayer(levelMap)
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoTileLayer)
	}
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}

			kind := Solid
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil &&
				tilesetTile.Properties.GetString(TileKindProperty) == TileKindHazard {
				kind = Hazard
			}
			level.SetTile(gamemath.IVec2{X: x, Y: y}, kind)
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	toTiles := func(o *tiled.Object) gamemath.Rect {
		return gamemath.RectFromMinSize(
			gamemath.V(o.X/tileW, o.Y/tileH),
			gamemath.V(o.Width/tileW, o.Height/tileH),
		)
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			if len(og.Objects) > 0 {
				level.Spawn = toTiles(og.Objects[0]).Min
				spawnFound = true
			}
		case PlatformsGroup:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, PlatformSpawn{
					Rect: toTiles(o),
					Travel: gamemath.V(
						o.Properties.GetFloat("travelX"),
						o.Properties.GetFloat("travelY"),
					),
					Duration: o.Properties.GetFloat("duration"),
				})
			}
		case FinishLineGroup:
			for _, o := range og.Objects {
				level.FinishLines = append(level.FinishLines, toTiles(o))
			}
		}
	}

	// Maps without a Spawn group use the first object of the first
	// non-empty object group.
	if !spawnFound {
		for _, og := range levelMap.ObjectGroups {
			if len(og.Objects) > 0 {
				level.Spawn = toTiles(og.Objects[0]).Min
				spawnFound = true
				break
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}

	return level, nil
}

func collisionLayer(m *tiled.Map) *tiled.Layer {
	if len(m.Layers) == 0 {
		return nil
	}
	for _, layer := range m.Layers {
		if layer.Name == CollisionLayer {
			return layer
		}
	}
	return m.Layers[0]
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and lays
// them out left to right in name order.
func LoadAllLevels(fsys fs.FS, levelsDir string) (*World, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	w := NewWorld()
	for i, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		w.Add(gamemath.IVec2{X: i}, level)
	}
	return w, nil
}
