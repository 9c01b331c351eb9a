// Package leveldata provides Tiled level parsing and the static tile grid the
// physics queries. It has no dependencies on ebitengine or resolv, pure data
// only.
package leveldata

import (
	"errors"

	"github.com/automoto/wallhop/shared/gamemath"
)

var (
	ErrNoTileLayer = errors.New("level has no tile layer")
	ErrNoSpawn     = errors.New("level has no spawn point")
)

// LevelTile is a set of tile categories. The zero value is an empty cell.
type LevelTile uint8

const (
	Solid LevelTile = 1 << iota
	Hazard
)

// Has reports whether t shares any category with mask.
func (t LevelTile) Has(mask LevelTile) bool { return t&mask != 0 }

// Level is one loaded map. Positions and sizes are in tiles, with y growing
// downwards as in Tiled.
type Level struct {
	Name       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int

	Spawn       gamemath.Vec2
	Platforms   []PlatformSpawn
	FinishLines []gamemath.Rect

	tiles []LevelTile
}

// PlatformSpawn describes a static or floating platform from the Platforms
// object group. Travel is zero for a platform that never moves.
type PlatformSpawn struct {
	Rect     gamemath.Rect
	Travel   gamemath.Vec2
	Duration float64 // seconds per leg
}

// NewLevel returns an empty width x height level.
func NewLevel(name string, width, height int) *Level {
	return &Level{
		Name:   name,
		Width:  width,
		Height: height,
		tiles:  make([]LevelTile, width*height),
	}
}

// TileAt returns the tile at cell, or 0 outside the level.
func (l *Level) TileAt(cell gamemath.IVec2) LevelTile {
	if cell.X < 0 || cell.X >= l.Width || cell.Y < 0 || cell.Y >= l.Height {
		return 0
	}
	return l.tiles[cell.X+cell.Y*l.Width]
}

// SetTile stores t at cell. Out of bounds writes are ignored.
func (l *Level) SetTile(cell gamemath.IVec2, t LevelTile) {
	if cell.X < 0 || cell.X >= l.Width || cell.Y < 0 || cell.Y >= l.Height {
		return
	}
	l.tiles[cell.X+cell.Y*l.Width] = t
}

// Bounds returns the level rect in tiles.
func (l *Level) Bounds() gamemath.Rect {
	return gamemath.RectFromMinSize(gamemath.Vec2{}, gamemath.V(float64(l.Width), float64(l.Height)))
}
