package systems

import (
	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/fonts"
	"github.com/automoto/wallhop/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawPause renders the pause overlay.
func DrawPause(screen *ebiten.Image, w *world.World) {
	if !w.Paused() {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), config.BlackOverlay, false)

	face := fonts.Title.Get()
	title := "PAUSED"
	bounds := text.BoundString(face, title)
	x := int(width/2) - bounds.Dx()/2
	y := int(height / 3)
	text.Draw(screen, title, face, x, y, config.White)

	hint := fonts.Regular.Get()
	msg := "Esc to resume"
	hb := text.BoundString(hint, msg)
	text.Draw(screen, msg, hint, int(width/2)-hb.Dx()/2, y+40, config.White)
}
