package systems

import (
	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/automoto/wallhop/world"
)

// Camera is the view centre in tiles.
type Camera struct {
	Position gamemath.Vec2
}

// Follow closes multiplier*dt of the gap to target.
func (c *Camera) Follow(target gamemath.Vec2, multiplier, dt float64) {
	t := gamemath.Clamp(multiplier*dt, 0, 1)
	c.Position = c.Position.Add(target.Sub(c.Position).Scale(t))
}

// ClampTo keeps a view of the given size inside bounds. An axis where the
// view is larger than bounds is centred instead.
func (c *Camera) ClampTo(bounds gamemath.Rect, view gamemath.Vec2) {
	clampAxis := func(pos, lo, hi, size float64) float64 {
		if hi-lo <= size {
			return (lo + hi) / 2
		}
		return gamemath.Clamp(pos, lo+size/2, hi-size/2)
	}
	c.Position.X = clampAxis(c.Position.X, bounds.Min.X, bounds.Max.X, view.X)
	c.Position.Y = clampAxis(c.Position.Y, bounds.Min.Y, bounds.Max.Y, view.Y)
}

// ToScreen converts a point in tiles to screen pixels.
func (c *Camera) ToScreen(p gamemath.Vec2, screenW, screenH int, tileSize float64) (float32, float32) {
	x := (p.X-c.Position.X)*tileSize + float64(screenW)/2
	y := (p.Y-c.Position.Y)*tileSize + float64(screenH)/2
	return float32(x), float32(y)
}

// ViewSize returns the visible area in tiles.
func ViewSize(screenW, screenH int, tileSize float64) gamemath.Vec2 {
	return gamemath.V(float64(screenW)/tileSize, float64(screenH)/tileSize)
}

// UpdateCamera follows the player's centre and keeps the view on the level.
func UpdateCamera(c *Camera, w *world.World, dt float64) {
	level := w.Level()
	if level == nil {
		return
	}
	c.Follow(w.Player.Body.WorldRect().Center(), config.Camera.FollowMultiplier, dt)
	if config.Camera.ClampToLevel {
		c.ClampTo(level.Bounds(), ViewSize(config.Window.Width, config.Window.Height, config.Window.TileSize))
	}
}

// SnapCamera centres the camera on the player without smoothing, used after
// a level change.
func SnapCamera(c *Camera, w *world.World) {
	c.Position = w.Player.Body.WorldRect().Center()
	if level := w.Level(); level != nil && config.Camera.ClampToLevel {
		c.ClampTo(level.Bounds(), ViewSize(config.Window.Width, config.Window.Height, config.Window.TileSize))
	}
}
