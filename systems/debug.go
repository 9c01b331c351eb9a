package systems

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/fonts"
	"github.com/automoto/wallhop/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugLines describes the player and world state for the overlay.
func DebugLines(w *world.World) []string {
	p := w.Player
	lines := []string{
		fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("time %v", w.Now().Truncate(time.Millisecond)),
	}
	if level := w.Level(); level != nil {
		lines = append(lines, fmt.Sprintf("level %s %v", level.Name, w.LevelPos()))
	}
	return append(lines,
		fmt.Sprintf("pos %.2f, %.2f", p.Body.Position.X, p.Body.Position.Y),
		fmt.Sprintf("vel %.2f, %.2f", p.Body.Velocity.X, p.Body.Velocity.Y),
		fmt.Sprintf("state %s  sides %s", p.State, p.LastSides),
		fmt.Sprintf("jumps %d/%d  can jump %v  buffered %v",
			p.TimesJumped(), p.Props.JumpsAvailable, p.CanJump(), p.JumpBuffered()),
	)
}

// DrawDebug renders collider outlines and the state overlay.
func DrawDebug(screen *ebiten.Image, w *world.World, cam *Camera) {
	if config.Debug.ShowColliders {
		DrawColliders(screen, w, cam)
	}
	if !config.Debug.ShowOverlay {
		return
	}

	face := fonts.Small.Get()
	lines := DebugLines(w)
	lineHeight := face.Metrics().Height.Ceil()

	vector.FillRect(screen, 4, 4, 300, float32(lineHeight*len(lines)+8), config.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 4+lineHeight*(i+1), color.White)
	}
}
