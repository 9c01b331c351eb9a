package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/wallhop/shared/gamemath"
)

func TestLoadWorld(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/main.world": {Data: []byte(`{
  "maps": [
    {"fileName": "start.tmx", "x": 0, "y": 0, "width": 64, "height": 32},
    {"fileName": "sub/end.tmx", "x": 64, "y": 0, "width": 64, "height": 32}
  ],
  "onlyShowAdjacentMaps": false,
  "type": "world"
}`)},
		"maps/start.tmx":   {Data: []byte(tmx([]string{"..", "##"}, spawnGroup))},
		"maps/sub/end.tmx": {Data: []byte(tmx([]string{"..", "##"}, spawnGroup))},
	}

	w, err := LoadWorld(fsys, "maps/main.world")
	if err != nil {
		t.Fatalf("LoadWorld() error = %v", err)
	}

	start, ok := w.Level(gamemath.IVec2{X: 0, Y: 0})
	if !ok || start.Name != "start" {
		t.Fatalf("Level(0,0) = %v, %v", start, ok)
	}
	end, ok := w.Level(gamemath.IVec2{X: 64, Y: 0})
	if !ok || end.Name != "end" {
		t.Fatalf("Level(64,0) = %v, %v", end, ok)
	}
}

func TestLoadWorldBadJSON(t *testing.T) {
	fsys := fstest.MapFS{"w.world": {Data: []byte(`{"maps": [`)}}
	if _, err := LoadWorld(fsys, "w.world"); err == nil {
		t.Error("expected a parse error")
	}
}

func TestWorldNextWraps(t *testing.T) {
	w := NewWorld()
	w.Add(gamemath.IVec2{X: 1, Y: 1}, NewLevel("c", 1, 1))
	w.Add(gamemath.IVec2{X: 5, Y: 0}, NewLevel("b", 1, 1))
	w.Add(gamemath.IVec2{X: 0, Y: 0}, NewLevel("a", 1, 1))

	first, _ := w.First()
	if first != (gamemath.IVec2{X: 0, Y: 0}) {
		t.Errorf("First() = %v", first)
	}

	expected := []gamemath.IVec2{{X: 5, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	pos := first
	for _, want := range expected {
		next, ok := w.Next(pos)
		if !ok || next != want {
			t.Fatalf("Next(%v) = %v, expected %v", pos, next, want)
		}
		pos = next
	}
}

func TestLevelTileAtOutOfBounds(t *testing.T) {
	l := NewLevel("t", 2, 2)
	l.SetTile(gamemath.IVec2{X: 1, Y: 1}, Solid)
	l.SetTile(gamemath.IVec2{X: 9, Y: 9}, Solid)

	if l.TileAt(gamemath.IVec2{X: 1, Y: 1}) != Solid {
		t.Error("expected a solid tile at (1, 1)")
	}
	if l.TileAt(gamemath.IVec2{X: 9, Y: 9}) != 0 {
		t.Error("expected no tile outside the level")
	}
	if !Hazard.Has(Hazard|Solid) || Solid.Has(Hazard) {
		t.Error("unexpected LevelTile.Has result")
	}
}
