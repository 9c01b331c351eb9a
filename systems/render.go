package systems

import (
	"image/color"

	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/physics"
	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/automoto/wallhop/shared/leveldata"
	"github.com/automoto/wallhop/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawWorld renders the level tiles, platforms, finish lines and the player.
func DrawWorld(screen *ebiten.Image, w *world.World, cam *Camera) {
	level := w.Level()
	if level == nil {
		return
	}
	drawLevel(screen, level, cam)

	for _, f := range w.FinishLines() {
		fillRect(screen, cam, f.WorldRect(), config.Finish)
	}
	for _, p := range w.Platforms() {
		fillRect(screen, cam, p.WorldRect(), config.Platform)
	}
	fillRect(screen, cam, w.Player.Body.WorldRect(), config.PlayerColor)
}

func drawLevel(screen *ebiten.Image, level *leveldata.Level, cam *Camera) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := ViewSize(width, height, config.Window.TileSize)

	// Only tiles inside the viewport
	lo := cam.Position.Sub(view.Scale(0.5)).Floor()
	hi := cam.Position.Add(view.Scale(0.5)).Floor()
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			cell := gamemath.IVec2{X: x, Y: y}
			tile := level.TileAt(cell)
			if tile == 0 {
				continue
			}
			c := config.Solid
			if tile.Has(leveldata.Hazard) {
				c = config.Hazard
			}
			fillRect(screen, cam, gamemath.RectFromMinSize(cell.Vec(), gamemath.V(1, 1)), c)
		}
	}
}

func fillRect(screen *ebiten.Image, cam *Camera, r gamemath.Rect, c color.Color) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	tile := config.Window.TileSize
	x, y := cam.ToScreen(r.Min, width, height, tile)
	vector.FillRect(screen, x, y, float32(r.Width()*tile), float32(r.Height()*tile), c, false)
}

func strokeRect(screen *ebiten.Image, cam *Camera, r gamemath.Rect, c color.Color) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	tile := config.Window.TileSize
	x, y := cam.ToScreen(r.Min, width, height, tile)
	vector.StrokeRect(screen, x, y, float32(r.Width()*tile), float32(r.Height()*tile), 1, c, false)
}

// DrawColliders outlines every collider, sensors in their own colour.
func DrawColliders(screen *ebiten.Image, w *world.World, cam *Camera) {
	if w.Level() == nil {
		return
	}
	for _, p := range w.Platforms() {
		strokeRect(screen, cam, p.WorldRect(), config.Collider)
	}
	for _, f := range w.FinishLines() {
		strokeRect(screen, cam, f.WorldRect(), config.Sensor)
	}

	body := w.Player.Body
	strokeRect(screen, cam, body.WorldRect(), config.Collider)
	if side, ok := physics.WallSide(body.WorldRect(), w.Level()); ok {
		r := body.WorldRect()
		x := r.Min.X - 0.1
		if side == physics.SideRight {
			x = r.Max.X
		}
		fillRect(screen, cam, gamemath.RectFromMinSize(gamemath.V(x, r.Min.Y), gamemath.V(0.1, r.Height())), config.Sensor)
	}
}
