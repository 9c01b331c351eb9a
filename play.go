package main

import (
	"path/filepath"

	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/fonts"
	"github.com/automoto/wallhop/scenes"
	"github.com/automoto/wallhop/systems"
	"github.com/automoto/wallhop/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window on the first level.

Controls:
  A/D, left stick  - Move
  Space, South     - Jump (again against a wall to walljump)
  Esc              - Pause
  R                - Respawn
  F1               - Toggle the debug overlay

Player properties and bindings are reloaded when the config file changes.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Window.Width, config.Window.Height
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	levels, err := loadLevels(logger)
	if err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	store := systems.OpenStore("wallhop", logger)
	props := store.LoadProperties(cfg.Player)

	var watcher *config.Watcher
	if cfg.Path != "" {
		watcher, err = config.NewWatcher(filepath.Dir(cfg.Path))
		if err != nil {
			logger.Warn("config hot reload disabled", "error", err)
			watcher = nil
		}
	}

	scene, err := scenes.NewPlatformerScene(world.New(levels, props), scenes.Options{
		Store:      store,
		Watcher:    watcher,
		ConfigPath: cfg.Path,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := scene.Close(); err != nil {
			logger.Warn("could not stop config watcher", "error", err)
		}
	}()

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.Window.Width*config.Window.Scale, config.Window.Height*config.Window.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	if config.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	// Saved settings override the config file
	systems.ApplySavedSettings(store.LoadSettings())
	if flagDebug {
		config.Debug.ShowOverlay = true
	}

	runErr := ebiten.RunGame(&Game{scene: scene})

	if err := store.SaveSettings(systems.CurrentSettings()); err != nil {
		logger.Debug("settings not saved", "error", err)
	}
	return runErr
}
