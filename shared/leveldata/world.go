package leveldata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/wallhop/shared/gamemath"
)

// World is a set of levels keyed by their position in a Tiled world file.
type World struct {
	levels map[gamemath.IVec2]*Level
	order  []gamemath.IVec2
}

func NewWorld() *World {
	return &World{levels: make(map[gamemath.IVec2]*Level)}
}

type worldFile struct {
	Maps []struct {
		FileName string `json:"fileName"`
		X        int    `json:"x"`
		Y        int    `json:"y"`
	} `json:"maps"`
}

// LoadWorld reads a Tiled .world file and every map it references. Map
// paths are resolved relative to the world file.
func LoadWorld(fsys fs.FS, worldPath string) (*World, error) {
	data, err := fs.ReadFile(fsys, worldPath)
	if err != nil {
		return nil, fmt.Errorf("read world %s: %w", worldPath, err)
	}

	var wf worldFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parse world %s: %w", worldPath, err)
	}
	if len(wf.Maps) == 0 {
		return nil, fmt.Errorf("world %s references no maps", worldPath)
	}

	dir := path.Dir(worldPath)
	w := NewWorld()
	for _, m := range wf.Maps {
		level, err := LoadLevel(fsys, path.Join(dir, m.FileName))
		if err != nil {
			return nil, err
		}
		w.Add(gamemath.IVec2{X: m.X, Y: m.Y}, level)
	}
	return w, nil
}

// Add stores level at pos, replacing any level already there.
func (w *World) Add(pos gamemath.IVec2, level *Level) {
	if _, ok := w.levels[pos]; !ok {
		w.order = append(w.order, pos)
		sort.Slice(w.order, func(i, j int) bool {
			a, b := w.order[i], w.order[j]
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X < b.X
		})
	}
	w.levels[pos] = level
}

// Level returns the level at pos.
func (w *World) Level(pos gamemath.IVec2) (*Level, bool) {
	l, ok := w.levels[pos]
	return l, ok
}

// Positions returns level positions in row-major order.
func (w *World) Positions() []gamemath.IVec2 {
	return append([]gamemath.IVec2(nil), w.order...)
}

// First returns the position of the first level in row-major order.
func (w *World) First() (gamemath.IVec2, bool) {
	if len(w.order) == 0 {
		return gamemath.IVec2{}, false
	}
	return w.order[0], true
}

// Next returns the position after pos in row-major order, wrapping to the
// first level.
func (w *World) Next(pos gamemath.IVec2) (gamemath.IVec2, bool) {
	if len(w.order) == 0 {
		return gamemath.IVec2{}, false
	}
	for i, p := range w.order {
		if p == pos {
			return w.order[(i+1)%len(w.order)], true
		}
	}
	return w.order[0], true
}

func (w *World) Len() int { return len(w.order) }
