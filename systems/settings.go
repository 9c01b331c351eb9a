package systems

import (
	"github.com/automoto/wallhop/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ApplySavedSettings applies loaded settings to the window and debug
// configuration. Nil settings keep the current ones.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	config.Window.Fullscreen = saved.Fullscreen
	config.Debug.ShowOverlay = saved.ShowOverlay
	ebiten.SetFullscreen(saved.Fullscreen)

	if saved.Scale >= 1 && saved.Scale <= config.MaxWindowScale {
		config.Window.Scale = saved.Scale
		ebiten.SetWindowSize(config.Window.Width*saved.Scale, config.Window.Height*saved.Scale)
	}
}

// CurrentSettings captures the settings worth saving.
func CurrentSettings() SavedSettings {
	return SavedSettings{
		Fullscreen:  ebiten.IsFullscreen(),
		Scale:       windowScale(ebiten.WindowSize()),
		ShowOverlay: config.Debug.ShowOverlay,
	}
}

// windowScale returns the largest whole scale that fits a w x h window.
func windowScale(w, h int) int {
	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return config.Window.Scale
	}
	scale := min(w/config.Window.Width, h/config.Window.Height)
	return max(1, min(config.MaxWindowScale, scale))
}
